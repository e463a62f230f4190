package download

import (
	"github.com/vidgrab/vidgrab/internal/model"
)

// Callbacks is the notification surface the presentation layer provides.
// Callbacks are invoked from worker goroutines; the UI is responsible for
// marshaling back onto its own execution context before touching UI state.
type Callbacks struct {
	// OnFetchSuccess delivers the new catalog; it replaces any prior one
	OnFetchSuccess func(info model.VideoInfo)

	// OnFetchFailure reports a failed metadata fetch; the catalog is left
	// unchanged
	OnFetchFailure func(kind model.ErrorKind, message string)

	// OnDownloadLine delivers one trimmed, non-blank output line of the
	// download process, in emission order
	OnDownloadLine func(line string)

	// OnDownloadComplete fires strictly after the last line, once the
	// process has fully exited
	OnDownloadComplete func(success bool)
}

// Orchestrator defines the interface consumed by the presentation layer
type Orchestrator interface {
	SetCallbacks(cb Callbacks)
	FetchInfo(url string) error
	Download(url, formatID string) error
	Phase() model.Phase
	DownloadDirectory() string
}
