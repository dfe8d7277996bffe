// Package landing wires the landing service commands.
package landing

import (
	"context"
	"fmt"

	platformcmd "github.com/rotaract-dypcoe/landing/internal/platform/cmd"
	landingservice "github.com/rotaract-dypcoe/landing/internal/services/landing"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/export"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/observability"
	"go.uber.org/zap"
)

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
}

func serviceConfig(cfg Config, logger *zap.Logger) landingservice.Config {
	return landingservice.Config{
		HTTPAddr:      cfg.HTTPAddr,
		AssetBaseURL:  cfg.AssetBaseURL,
		PublicDir:     cfg.PublicDir,
		SlideInterval: cfg.SlideInterval,
		Logger:        logger,
	}
}

// Run starts the landing server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceLanding, platformcmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := landingservice.NewServer(ctx, serviceConfig(cfg, logger))
		if err != nil {
			return fmt.Errorf("init landing server: %w", err)
		}
		defer server.Close()
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve landing: %w", err)
		}
		return nil
	})
}

// Export writes the static site into outDir.
func Export(ctx context.Context, cfg Config, outDir string, logger *zap.Logger) (export.Result, error) {
	deps, err := landingservice.NewDependencies(serviceConfig(cfg, logger))
	if err != nil {
		return export.Result{}, fmt.Errorf("init landing: %w", err)
	}
	result, err := export.Write(ctx, outDir, deps)
	if err != nil {
		return export.Result{}, fmt.Errorf("export landing: %w", err)
	}
	return result, nil
}
