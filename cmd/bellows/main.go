package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"

	bellowsApp "github.com/shhac/bellows/internal/app"
	"github.com/shhac/bellows/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Temporary stdout logger for bootstrap errors
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

	tempLogger.Info("starting Bellows")

	// Load configuration from environment
	cfg := bellowsApp.ConfigFromEnv()

	// Create Fyne application
	fyneApp := app.NewWithID("com.shhac.bellows")
	ui.ApplyTheme(fyneApp, cfg.Theme)

	// Create and wire the application
	bellows, err := bellowsApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Build the main window; the accordion feature is installed here, so a
	// bad default-state configuration fails before any UI is shown.
	mainWindow, err := ui.NewMainWindow(bellows.FyneApp(), bellows)
	if err != nil {
		return err
	}

	// Run the application (blocking)
	bellows.Run(mainWindow.Window())

	bellows.Logger().Info("application shutdown complete")
	return nil
}
