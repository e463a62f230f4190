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

const (
	AppID   = "com.vidgrab.vidgrab-compact"
	AppName = "VidGrab Compact"

	WindowWidth  = 560
	WindowHeight = 480
)

// The compact variant: same workflow, tighter theme and a smaller window.
func main() {
	slog.Info("starting", slog.String("app", AppName))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		slog.Error("failed to ensure downloads dir", slog.Any("err", err))
	}

	runner := platform.NewYTDLP(settings.GetToolPath())
	orchestrator := download.NewService(runner, downloadsDir)

	ui.NewRootUI(myWindow, myApp, orchestrator)

	myWindow.ShowAndRun()
}
