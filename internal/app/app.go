package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/shhac/bellows/internal/accordion"
	"github.com/shhac/bellows/internal/dom"
	"github.com/shhac/bellows/internal/logging"
	"github.com/shhac/bellows/internal/model"
	"github.com/shhac/bellows/internal/ui/panelview"
)

// App is the main application coordinator, responsible for wiring together
// all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	state    *model.UIState
	renderer *panelview.Renderer
	acfg     accordion.Config
	binder   *accordion.Binder
}

// New creates a new App instance with the given configuration. This performs
// all dependency injection and wiring short of building the window.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.New("bellows", logging.Options{
		Debug: cfg.Debug,
		Path:  cfg.LogPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	acfg := accordion.DefaultConfig()
	if cfg.DefaultState != "" {
		acfg.DefaultKey = cfg.DefaultState
	}

	logger.Info("initializing bellows",
		slog.Bool("debug", cfg.Debug),
		slog.String("default_state", acfg.DefaultKey),
		slog.Duration("anim_duration", cfg.AnimDuration),
	)

	return &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		state:    model.NewUIState(),
		renderer: panelview.NewRenderer(cfg.AnimDuration),
		acfg:     acfg,
	}, nil
}

// Install registers the accordion feature, scans doc for containers, and
// binds them. onTransition observes every applied state change; the
// configured default state key is validated here, and an unknown key aborts
// the install.
func (a *App) Install(doc *dom.Node, onTransition accordion.TransitionFunc) (*accordion.Binder, error) {
	binder, err := accordion.Install(doc, a.acfg, a.renderer,
		accordion.WithLogger(a.logger),
		accordion.WithTransitionCallback(onTransition),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to install accordion: %w", err)
	}
	a.binder = binder
	a.logger.Info("accordion installed")
	return binder, nil
}

// Run starts the application and displays the main window. This is a
// blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// AccordionConfig returns the accordion configuration in effect.
func (a *App) AccordionConfig() accordion.Config {
	return a.acfg
}

// Renderer returns the shared panel renderer.
func (a *App) Renderer() *panelview.Renderer {
	return a.renderer
}

// State returns the UI state for use by UI components.
func (a *App) State() *model.UIState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
