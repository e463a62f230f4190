package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	FormatListMinWidth  float32 = 620
	FormatListMinHeight float32 = 220
	StatusLogMinHeight  float32 = 150
)

// Static labels
const (
	LabelURLPlaceholder = "Paste a video URL"
	LabelFetch          = "Fetch Formats"
	LabelDownload       = "Download Selected"
	LabelQualities      = "Available Qualities:"
	LabelProgress       = "Progress:"
	TitlePrefix         = "Video: "
	SaveLocationPrefix  = "Save location: "
)

// Status log messages
const (
	MsgFetching         = "Fetching video information..."
	MsgFoundFormats     = "Found %d quality options"
	MsgStartingDownload = "Starting download: %s"
	MsgDownloadDone     = "Download completed successfully!"
)

// Dialog texts
const (
	DialogWarningTitle   = "Warning"
	DialogSuccessTitle   = "Success"
	DialogSelectQuality  = "Please select a quality option"
	DialogDownloadOK     = "Download completed!\n\nSaved to: %s"
	DialogDownloadFailed = "Download failed. Check the status log for details."
)
