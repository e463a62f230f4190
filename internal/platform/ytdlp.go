package platform

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Default external downloader binary, resolved through PATH
const (
	DefaultToolName = "yt-dlp"
)

// Flags of the external downloader. These exact shapes are the contract with
// the tool and must not be reordered or reworded.
const (
	flagDumpJSON   = "-J"
	flagFormat     = "-f"
	flagOutputDir  = "-P"
	flagLineBuffer = "--newline"
)

// ErrToolNotFound reports that the downloader executable is missing
var ErrToolNotFound = errors.New("downloader executable not found")

// ToolExitError reports a non-zero exit of the downloader during a metadata
// fetch, carrying whatever diagnostic text the tool wrote to stderr
type ToolExitError struct {
	ExitCode   int
	Diagnostic string
}

func (e *ToolExitError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("downloader exited with code %d", e.ExitCode)
	}
	return e.Diagnostic
}

// Runner abstracts the external downloader process so the orchestrator can be
// exercised with a fake in tests.
type Runner interface {
	// FetchRawInfo runs the tool in dump-metadata mode and returns its raw
	// stdout, expected to be one JSON document.
	FetchRawInfo(url string) ([]byte, error)

	// StreamDownload runs a download and forwards every raw output line
	// (stdout and stderr combined, in emission order) to onLine. It returns
	// only after the process has fully exited; a nil return means exit code
	// zero.
	StreamDownload(url, selector, outputDir string, onLine func(string)) error
}

// YTDLP invokes the yt-dlp command line tool
type YTDLP struct {
	toolPath string
}

// NewYTDLP creates a runner for the given executable path or name
func NewYTDLP(toolPath string) *YTDLP {
	if toolPath == "" {
		toolPath = DefaultToolName
	}
	return &YTDLP{toolPath: toolPath}
}

// FetchRawInfo runs `<tool> -J <url>` and returns its stdout
func (y *YTDLP) FetchRawInfo(url string) ([]byte, error) {
	cmd := exec.Command(y.toolPath, flagDumpJSON, url)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Info("retrieving metadata", slog.String("url", url))

	if err := cmd.Run(); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrToolNotFound, y.toolPath)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ToolExitError{
				ExitCode:   exitErr.ExitCode(),
				Diagnostic: strings.TrimSpace(stderr.String()),
			}
		}

		return nil, err
	}

	return stdout.Bytes(), nil
}

// StreamDownload runs `<tool> -f <selector> -P <dir> --newline <url>` and
// scans its combined output line by line
func (y *YTDLP) StreamDownload(url, selector, outputDir string, onLine func(string)) error {
	cmd := exec.Command(y.toolPath, flagFormat, selector, flagOutputDir, outputDir, flagLineBuffer, url)

	// Both streams share one pipe so progress and diagnostics arrive in the
	// order the tool emits them
	pr, pw, err := os.Pipe()
	if err != nil {
		return err
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	slog.Info("starting download",
		slog.String("url", url),
		slog.String("selector", selector),
		slog.String("dir", outputDir),
	)

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrToolNotFound, y.toolPath)
		}
		return err
	}

	// The child holds its own copy of the write end; close ours so the scanner
	// sees EOF when the process exits
	pw.Close()

	scanner := bufio.NewScanner(pr)
	for scanner.Scan() {
		onLine(scanner.Text())
	}
	pr.Close()

	return cmd.Wait()
}

// isNotFound reports whether err means the executable could not be located
func isNotFound(err error) bool {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return errors.Is(execErr.Err, exec.ErrNotFound) || errors.Is(execErr.Err, os.ErrNotExist)
	}
	return errors.Is(err, os.ErrNotExist)
}
