package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestToolPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetToolPath()
	if path != DefaultToolPath {
		t.Errorf("Expected default tool path %s, got %s", DefaultToolPath, path)
	}

	// Test setting custom value
	settings.SetToolPath("/opt/tools/yt-dlp")
	if settings.GetToolPath() != "/opt/tools/yt-dlp" {
		t.Errorf("Expected custom tool path, got %s", settings.GetToolPath())
	}

	// Empty value falls back to the default
	settings.SetToolPath("")
	if settings.GetToolPath() != DefaultToolPath {
		t.Errorf("Expected empty tool path to reset to default, got %s", settings.GetToolPath())
	}
}

func TestRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetRevealOnComplete() != DefaultRevealOnComplete {
		t.Errorf("Expected default reveal setting %v", DefaultRevealOnComplete)
	}

	// Test setting custom value
	settings.SetRevealOnComplete(false)
	if settings.GetRevealOnComplete() {
		t.Error("Expected reveal setting to be false after update")
	}
}
