package platform

import (
	"errors"
	"testing"
)

func TestNewYTDLP_DefaultsToolName(t *testing.T) {
	runner := NewYTDLP("")
	if runner.toolPath != DefaultToolName {
		t.Errorf("expected default tool path %q, got %q", DefaultToolName, runner.toolPath)
	}

	runner = NewYTDLP("/opt/tools/yt-dlp")
	if runner.toolPath != "/opt/tools/yt-dlp" {
		t.Errorf("expected custom tool path to be kept, got %q", runner.toolPath)
	}
}

func TestToolExitError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolExitError
		expected string
	}{
		{
			name:     "with diagnostic text",
			err:      &ToolExitError{ExitCode: 1, Diagnostic: "ERROR: unsupported URL"},
			expected: "ERROR: unsupported URL",
		},
		{
			name:     "without diagnostic text",
			err:      &ToolExitError{ExitCode: 2},
			expected: "downloader exited with code 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestFetchRawInfo_MissingExecutable(t *testing.T) {
	runner := NewYTDLP("definitely-not-a-real-downloader-binary")

	_, err := runner.FetchRawInfo("https://example/video")
	if err == nil {
		t.Fatal("expected error for missing executable, got nil")
	}
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestStreamDownload_MissingExecutable(t *testing.T) {
	runner := NewYTDLP("definitely-not-a-real-downloader-binary")

	var lines []string
	err := runner.StreamDownload("https://example/video", "137+bestaudio/best", t.TempDir(), func(line string) {
		lines = append(lines, line)
	})

	if err == nil {
		t.Fatal("expected error for missing executable, got nil")
	}
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines before start failure, got %v", lines)
	}
}
