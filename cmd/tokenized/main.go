package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/kerem-kaynak/treebank-tokenizer/internal/server"
	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

var (
	configPath = kingpin.Flag("config", "YAML server config").Short('c').String()
	addr       = kingpin.Flag("addr", "HTTP listen address (overrides config)").String()
	logLevel   = kingpin.Flag("log-level", "debug, info, warn or error (overrides config)").String()
	logFile    = kingpin.Flag("log-file", "also write logs to this rotating file").String()
)

func main() {
	kingpin.Parse()

	cfg := server.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = server.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	log, err := server.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	tok := tokenizer.NewTokenizer(cfg.Tokenizer)
	srv := server.New(tok, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("shutting down", zap.String("signal", sig.String()))
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("starting",
		zap.Bool("cache", cfg.Tokenizer.Cache),
		zap.Bool("lowercase", cfg.Tokenizer.Lowercase),
		zap.Bool("stem", cfg.Tokenizer.Stem),
	)
	if err := srv.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
