// Package server exposes a Tokenizer over HTTP.
package server

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

// MaxBodySize bounds the request body accepted by /tokenize.
const MaxBodySize = 1 << 20

type tokenizeRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type tokenizeResponse struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
	Mode   string   `json:"mode"`
}

type metrics struct {
	requests *prometheus.CounterVec
	tokens   prometheus.Counter
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenizer_requests_total",
				Help: "Tokenize requests by mode and outcome.",
			},
			[]string{"mode", "status"},
		),
		tokens: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tokenizer_tokens_total",
				Help: "Tokens returned by successful requests.",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tokenizer_request_seconds",
				Help:    "Time spent tokenizing a request.",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
	}
	reg.MustRegister(m.requests, m.tokens, m.duration)
	return m
}

// Server serves tokenization requests.
type Server struct {
	app     *fiber.App
	tok     *tokenizer.Tokenizer
	log     *zap.Logger
	metrics *metrics
}

// New builds a server around tok. Metrics are registered on a private
// registry and served at /metrics.
func New(tok *tokenizer.Tokenizer, log *zap.Logger) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		app: fiber.New(fiber.Config{
			BodyLimit:             MaxBodySize,
			DisableStartupMessage: true,
		}),
		tok:     tok,
		log:     log,
		metrics: newMetrics(reg),
	}

	s.app.Use(recover.New())
	s.app.Post("/tokenize", s.handleTokenize)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleTokenize(c *fiber.Ctx) error {
	var req tokenizeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.metrics.requests.WithLabelValues("", "bad_request").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	mode, err := tokenizer.ParseMode(req.Mode)
	if err != nil {
		s.metrics.requests.WithLabelValues("", "bad_request").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	start := time.Now()
	tokens, err := s.tok.TokenizeMode(mode, req.Text)
	if err != nil {
		s.metrics.requests.WithLabelValues(string(mode), "error").Inc()
		s.log.Error("tokenize failed", zap.String("mode", string(mode)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	elapsed := time.Since(start)

	s.metrics.requests.WithLabelValues(string(mode), "ok").Inc()
	s.metrics.tokens.Add(float64(len(tokens)))
	s.metrics.duration.Observe(elapsed.Seconds())
	s.log.Debug("tokenized",
		zap.String("mode", string(mode)),
		zap.Int("bytes", len(req.Text)),
		zap.Int("tokens", len(tokens)),
		zap.Duration("elapsed", elapsed),
	)

	return c.JSON(tokenizeResponse{Tokens: tokens, Count: len(tokens), Mode: string(mode)})
}
