package main

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/vidgrab/vidgrab/internal/config"
	"github.com/vidgrab/vidgrab/internal/download"
	"github.com/vidgrab/vidgrab/internal/platform"
	"github.com/vidgrab/vidgrab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.vidgrab.vidgrab"
	AppName = "VidGrab"

	WindowWidth  = 700
	WindowHeight = 600
)

func main() {
	slog.Info("starting", slog.String("app", AppName), slog.String("version", version))

	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName + " v" + version)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		slog.Error("failed to ensure downloads dir", slog.Any("err", err))
	}

	runner := platform.NewYTDLP(settings.GetToolPath())
	orchestrator := download.NewService(runner, downloadsDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, orchestrator)

	// Show and run
	myWindow.ShowAndRun()
}
