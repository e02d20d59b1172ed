// cmd/toyvec/main.go
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/FairForge/toyvec/internal/config"
	"github.com/FairForge/toyvec/internal/demo"
	"github.com/FairForge/toyvec/internal/logging"
	"github.com/FairForge/toyvec/internal/metrics"
	"github.com/FairForge/toyvec/internal/vec"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if path := config.GetEnvOrDefault("TOYVEC_CONFIG", ""); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var (
		observer vec.Observer
		registry *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(cfg.Metrics.Namespace, registry)
		if err != nil {
			return err
		}
		observer = collector
	}

	report, err := demo.NewRunner(logger, observer, os.Stdout).Run(cfg.Demo)
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		return err
	}
	logger.Info("demo finished",
		zap.Strings("contents", report.Contents),
		zap.Int("len", report.Len),
		zap.Int("capacity", report.Cap))

	if registry != nil {
		return metrics.WriteText(os.Stdout, registry)
	}
	return nil
}
