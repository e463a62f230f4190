package model

// Format is one downloadable stream variant discovered for a video. The ID is
// the opaque identifier assigned by the external downloader and is required to
// issue the download command. Description is a display rendering of the other
// fields and never participates in identity.
type Format struct {
	ID          string
	Resolution  string // e.g. "1920x1080", or "audio only" when unknown
	FPS         int    // 0 when unknown or not applicable
	Ext         string // container extension, e.g. "mp4"
	HasAudio    bool
	SizeBytes   int64 // 0 when the external tool reports no size
	Description string
}

// VideoInfo is the result of a successful metadata fetch: the video title and
// the ordered, deduplicated list of formats offered for selection.
type VideoInfo struct {
	Title   string
	Formats []Format
}

// DownloadJob is one download invocation: a target URL plus the format chosen
// from the current catalog. Jobs are ephemeral and never persisted.
type DownloadJob struct {
	ID       string
	URL      string
	FormatID string
}
