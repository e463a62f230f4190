package model

import "testing"

func TestPhase_IsBusy(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseFetching, true},
		{PhaseReady, false},
		{PhaseDownloading, true},
	}

	for _, test := range tests {
		result := test.phase.IsBusy()
		if result != test.expected {
			t.Errorf("Phase(%s).IsBusy() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_String(t *testing.T) {
	phase := PhaseDownloading
	expected := "Downloading"
	result := phase.String()

	if result != expected {
		t.Errorf("Phase.String() = %s, expected %s", result, expected)
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrorKindInvalidInput, "InvalidInput"},
		{ErrorKindToolNotInstalled, "ToolNotInstalled"},
		{ErrorKindExternalToolFailure, "ExternalToolFailure"},
		{ErrorKindMalformedResponse, "MalformedResponse"},
		{ErrorKindDownloadFailure, "DownloadFailure"},
		{ErrorKindUnknown, "Unknown"},
	}

	for _, test := range tests {
		if test.kind.String() != test.expected {
			t.Errorf("ErrorKind.String() = %s, expected %s", test.kind.String(), test.expected)
		}
	}
}
