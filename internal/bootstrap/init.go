package bootstrap

import (
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/todo/config"
	"github.com/boolean-maybe/todo/store"
)

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg      *config.Config
	LogLevel slog.Level
	Store    store.Store
}

// Bootstrap orchestrates the application initialization sequence.
// Paths must already be initialized with config.InitPaths.
func Bootstrap(flagSet *pflag.FlagSet) (*BootstrapResult, error) {
	// Phase 1: Configuration and logging
	cfg, err := LoadConfig(flagSet)
	if err != nil {
		return nil, err
	}
	logLevel := InitLogging(cfg)

	// Phase 2: Store initialization
	taskStore := InitStore(cfg)
	slog.Debug("bootstrap complete", "file", taskStore.Path())

	return &BootstrapResult{
		Cfg:      cfg,
		LogLevel: logLevel,
		Store:    taskStore,
	}, nil
}
