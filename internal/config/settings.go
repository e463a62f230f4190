package config

import (
	"fyne.io/fyne/v2"

	"github.com/vidgrab/vidgrab/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyToolPath         = "downloader_path"
	KeyRevealOnComplete = "reveal_on_complete"
)

// Default values
const (
	DefaultToolPath         = platform.DefaultToolName
	DefaultRevealOnComplete = true

	// Fallback when the user's Downloads directory cannot be resolved
	FallbackDownloadDir = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory, defaulting
// to the user's Downloads directory resolved once at startup
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetToolPath returns the downloader executable path or name
func (s *Settings) GetToolPath() string {
	path := s.app.Preferences().String(KeyToolPath)
	if path == "" {
		s.SetToolPath(DefaultToolPath)
		return DefaultToolPath
	}
	return path
}

// SetToolPath sets the downloader executable path or name
func (s *Settings) SetToolPath(path string) {
	if path == "" {
		path = DefaultToolPath
	}
	s.app.Preferences().SetString(KeyToolPath, path)
}

// GetRevealOnComplete returns whether to open the downloads directory after a
// successful download
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to open the downloads directory after a
// successful download
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}
