package app

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"wikilabels/internal/config"
	"wikilabels/internal/labeler"
	"wikilabels/internal/wikipedia"
)

// App holds the wired-up components for one process: configuration, the
// Wikipedia collaborator and the labelling service on top of it.
type App struct {
	Config *config.Config

	WikiClient   *wikipedia.Client
	LabelService *labeler.Service
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{Config: cfg}
	if err := app.initWikiClient(); err != nil {
		return nil, err
	}
	app.initLabelService()

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initWikiClient() error {
	cfg := a.Config.Wikipedia
	client, err := wikipedia.NewClient(wikipedia.Options{
		BaseURL:       cfg.BaseURL,
		Timeout:       time.Duration(cfg.TimeoutSeconds) * time.Second,
		SearchLimit:   cfg.SearchLimit,
		MaxRetries:    cfg.RetryMaxAttempts,
		RetryBaseWait: time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond,
		CacheTTL:      time.Duration(cfg.CacheTTLSeconds) * time.Second,
		UserAgent:     cfg.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("init wikipedia client: %w", err)
	}
	a.WikiClient = client
	return nil
}

func (a *App) initLabelService() {
	// The same client serves both collaborator roles.
	a.LabelService = labeler.NewService(
		a.WikiClient,
		a.WikiClient,
		labeler.NewAggregator(labeler.ExponentialDecay),
		a.Config.Suggest.MaxConcurrency,
	)
}
