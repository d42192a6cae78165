package application

import (
	"fmt"
	"io"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/configloader/internal/config"
	"github.com/eugenenazirov/configloader/internal/provider"
	"github.com/eugenenazirov/configloader/internal/render"
)

// App encapsulates the dependencies of the configloader command.
type App struct {
	cfg      config.Config
	provider *provider.Provider
	store    *koanf.Koanf
	logger   *zap.Logger
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &App{
		cfg:      cfg,
		provider: provider.New(cfg.FilePath, cfg.Delimiter, logger),
		store:    koanf.New("."),
		logger:   logger,
	}, nil
}

// Run loads the configured file and writes its coerced entries to w.
func (a *App) Run(w io.Writer) error {
	if err := a.store.Load(a.provider, nil); err != nil {
		return fmt.Errorf("load %s: %w", a.cfg.FilePath, err)
	}

	a.logger.Debug("configuration file inspected",
		zap.String("path", a.cfg.FilePath),
		zap.String("delimiter", a.cfg.Delimiter.String()),
		zap.Int("keys", len(a.store.Keys())),
	)

	if err := render.Encode(w, a.cfg.Output, a.store.All()); err != nil {
		return fmt.Errorf("render %s: %w", a.cfg.Output, err)
	}
	return nil
}
