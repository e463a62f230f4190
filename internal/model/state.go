package model

// Phase represents the current state of the fetch/select/download workflow
type Phase string

const (
	// PhaseIdle means no catalog has been fetched yet
	PhaseIdle Phase = "Idle"

	// PhaseFetching means a metadata fetch is in flight
	PhaseFetching Phase = "Fetching"

	// PhaseReady means a catalog is available for selection
	PhaseReady Phase = "Ready"

	// PhaseDownloading means a download is in flight
	PhaseDownloading Phase = "Downloading"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsBusy returns true while an operation is in flight; a second fetch or
// download must be rejected in this state
func (p Phase) IsBusy() bool {
	return p == PhaseFetching || p == PhaseDownloading
}
