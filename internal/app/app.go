package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"github.com/shhac/travelease/internal/imageload"
	"github.com/shhac/travelease/internal/logging"
	"github.com/shhac/travelease/internal/model"
	"github.com/shhac/travelease/internal/storage"
)

// Preference keys stored through fyne.Preferences.
const (
	PrefImageTimeout = "image_timeout_seconds"
	PrefTheme        = "theme"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	logFile io.Closer
	storage storage.Repository
	images  *imageload.HTTPLoader
	state   *model.ApplicationState
	trip    *Trip
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, logFile, err := logging.InitLogger(logging.Options{
		AppName: "travelease",
		Debug:   cfg.Debug,
		Dir:     cfg.LogDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing TravelEase",
		slog.Bool("debug", cfg.Debug),
		slog.String("storage_path", cfg.StoragePath),
	)

	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			logFile.Close()
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	repo := storage.NewJSONRepository(storagePath, logger)

	// A timeout saved in preferences wins over the environment default
	timeout := cfg.ImageTimeout
	if secs := fyneApp.Preferences().Int(PrefImageTimeout); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}
	images := imageload.NewHTTPLoader(timeout, imageload.Placeholder, logger)

	state := model.NewApplicationState()
	trip := NewTrip(repo, state, logger)
	if err := trip.RefreshNames(); err != nil {
		logger.Warn("failed to list saved itineraries", slog.Any("error", err))
	}

	logger.Info("application initialized successfully",
		slog.String("storage_path", storagePath),
		slog.Duration("image_timeout", timeout))

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		logFile: logFile,
		storage: repo,
		images:  images,
		state:   state,
		trip:    trip,
	}, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// SetImageTimeout changes the photo download timeout and remembers it
func (a *App) SetImageTimeout(timeout time.Duration) {
	a.images.SetTimeout(timeout)
	a.fyneApp.Preferences().SetInt(PrefImageTimeout, int(timeout/time.Second))
	a.logger.Info("image timeout changed", slog.Duration("timeout", timeout))
}

// ImageTimeout returns the current photo download timeout
func (a *App) ImageTimeout() time.Duration {
	return a.images.Timeout()
}

// Close stops background image downloads and closes the log file
func (a *App) Close() error {
	a.images.Close()
	a.logger.Info("application shutdown complete")
	return a.logFile.Close()
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Trip returns the open itinerary.
func (a *App) Trip() *Trip {
	return a.trip
}

// Images returns the place photo loader.
func (a *App) Images() imageload.Loader {
	return a.images
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Config returns the configuration the app was created with.
func (a *App) Config() *Config {
	return a.config
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
