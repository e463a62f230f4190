package download

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vidgrab/vidgrab/internal/catalog"
	"github.com/vidgrab/vidgrab/internal/model"
	"github.com/vidgrab/vidgrab/internal/platform"
)

// Format selector suffix: prefer the chosen video stream combined with the
// best audio, falling back to the tool's own best-effort selection
const (
	SelectorSuffix = "+bestaudio/best"
)

// ErrBusy is returned when a fetch or download is requested while a prior
// operation is still in flight
var ErrBusy = errors.New("an operation is already in progress")

// Service orchestrates metadata fetches and downloads. One fetch and one
// download may be in flight at a time per instance; concurrent requests are
// rejected with ErrBusy.
type Service struct {
	runner      platform.Runner
	builder     *catalog.Builder
	downloadDir string

	mu         sync.Mutex
	phase      model.Phase
	hasCatalog bool
	callbacks  Callbacks
}

// NewService creates a new orchestrator writing downloads into downloadDir
func NewService(runner platform.Runner, downloadDir string) *Service {
	return &Service{
		runner:      runner,
		builder:     catalog.NewBuilder(),
		downloadDir: downloadDir,
		phase:       model.PhaseIdle,
	}
}

// SetCallbacks sets the notification surface. Must be called before the first
// operation.
func (s *Service) SetCallbacks(cb Callbacks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = cb
}

// Phase returns the current workflow phase
func (s *Service) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// DownloadDirectory returns the fixed output directory resolved at startup
func (s *Service) DownloadDirectory() string {
	return s.downloadDir
}

// FetchInfo fetches metadata for url and rebuilds the catalog. The blocking
// subprocess work runs on a worker goroutine; the result arrives via
// OnFetchSuccess or OnFetchFailure. An empty URL fails with InvalidInput
// without invoking the external tool.
func (s *Service) FetchInfo(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		s.snapshotCallbacks().fetchFailure(model.ErrorKindInvalidInput, "no URL provided")
		return nil
	}

	s.mu.Lock()
	if s.phase.IsBusy() {
		s.mu.Unlock()
		return ErrBusy
	}
	s.phase = model.PhaseFetching
	s.mu.Unlock()

	go s.runFetch(url)
	return nil
}

// Download starts downloading the given previously discovered format. Output
// lines arrive via OnDownloadLine, then OnDownloadComplete fires exactly once.
// Catalog membership of formatID is the caller's responsibility.
func (s *Service) Download(url, formatID string) error {
	s.mu.Lock()
	if s.phase.IsBusy() {
		s.mu.Unlock()
		return ErrBusy
	}
	s.phase = model.PhaseDownloading
	s.mu.Unlock()

	job := model.DownloadJob{
		ID:       uuid.NewString(),
		URL:      strings.TrimSpace(url),
		FormatID: formatID,
	}

	go s.runDownload(job)
	return nil
}

// runFetch performs the blocking metadata fetch on a worker goroutine
func (s *Service) runFetch(url string) {
	cb := s.snapshotCallbacks()

	raw, err := s.runner.FetchRawInfo(url)
	if err != nil {
		kind, message := classifyFetchError(err)
		slog.Error("metadata fetch failed",
			slog.String("url", url),
			slog.String("kind", kind.String()),
		)
		s.settle(false)
		cb.fetchFailure(kind, message)
		return
	}

	rawInfo, err := catalog.DecodeRawInfo(raw)
	if err != nil {
		slog.Error("metadata output unparsable", slog.String("url", url))
		s.settle(false)
		cb.fetchFailure(model.ErrorKindMalformedResponse, err.Error())
		return
	}

	info := s.builder.BuildVideoInfo(rawInfo)
	slog.Info("metadata fetched",
		slog.String("title", info.Title),
		slog.Int("formats", len(info.Formats)),
	)

	s.settle(true)
	cb.fetchSuccess(info)
}

// runDownload performs the blocking download on a worker goroutine
func (s *Service) runDownload(job model.DownloadJob) {
	cb := s.snapshotCallbacks()
	selector := job.FormatID + SelectorSuffix

	onLine := func(raw string) {
		line := strings.TrimSpace(raw)
		if line == "" {
			return
		}
		cb.downloadLine(line)
	}

	err := s.runner.StreamDownload(job.URL, selector, s.downloadDir, onLine)
	success := err == nil

	if err != nil {
		slog.Error("download failed",
			slog.String("job", job.ID),
			slog.String("url", job.URL),
			slog.Any("err", err),
		)
		// Exit codes speak through the forwarded output; launch and read
		// failures have produced none, so log one descriptive line first
		if !isExitFailure(err) {
			cb.downloadLine("Download error: " + err.Error())
		}
	} else {
		slog.Info("download finished", slog.String("job", job.ID))
	}

	s.settle(false)
	cb.downloadComplete(success)
}

// settle records a terminal workflow transition: the phase returns to Ready
// when a catalog exists, else Idle. catalogReplaced marks a successful fetch.
func (s *Service) settle(catalogReplaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if catalogReplaced {
		s.hasCatalog = true
	}
	if s.hasCatalog {
		s.phase = model.PhaseReady
	} else {
		s.phase = model.PhaseIdle
	}
}

// snapshotCallbacks copies the callback surface under the lock so workers
// never race a SetCallbacks call
func (s *Service) snapshotCallbacks() Callbacks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callbacks
}

// classifyFetchError maps a runner error to the reported error kind
func classifyFetchError(err error) (model.ErrorKind, string) {
	if errors.Is(err, platform.ErrToolNotFound) {
		return model.ErrorKindToolNotInstalled, err.Error()
	}

	var exitErr *platform.ToolExitError
	if errors.As(err, &exitErr) {
		return model.ErrorKindExternalToolFailure, exitErr.Error()
	}

	return model.ErrorKindUnknown, err.Error()
}

// isExitFailure reports whether err represents a clean non-zero process exit
// rather than a launch or read failure
func isExitFailure(err error) bool {
	type exitCoder interface{ ExitCode() int }
	var ec exitCoder
	return errors.As(err, &ec)
}

// fetchSuccess invokes OnFetchSuccess when set
func (cb Callbacks) fetchSuccess(info model.VideoInfo) {
	if cb.OnFetchSuccess != nil {
		cb.OnFetchSuccess(info)
	}
}

// fetchFailure invokes OnFetchFailure when set
func (cb Callbacks) fetchFailure(kind model.ErrorKind, message string) {
	if cb.OnFetchFailure != nil {
		cb.OnFetchFailure(kind, message)
	}
}

// downloadLine invokes OnDownloadLine when set
func (cb Callbacks) downloadLine(line string) {
	if cb.OnDownloadLine != nil {
		cb.OnDownloadLine(line)
	}
}

// downloadComplete invokes OnDownloadComplete when set
func (cb Callbacks) downloadComplete(success bool) {
	if cb.OnDownloadComplete != nil {
		cb.OnDownloadComplete(success)
	}
}
