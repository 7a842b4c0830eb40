package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	travelApp "github.com/shhac/travelease/internal/app"
	"github.com/shhac/travelease/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting TravelEase")

	cfg := travelApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.travelease.app")
	ui.LoadThemePreference(fyneApp)

	travelease, err := travelApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if cerr := travelease.Close(); cerr != nil {
			tempLogger.Warn("failed to close application", slog.Any("error", cerr))
		}
	}()

	mainWindow := ui.NewMainWindow(travelease.FyneApp(), travelease)

	// Run the application (blocking)
	travelease.Run(mainWindow.Window())

	return nil
}
