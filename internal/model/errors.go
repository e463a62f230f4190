package model

// ErrorKind classifies failures reported to the presentation layer
type ErrorKind string

const (
	// ErrorKindInvalidInput means the request was rejected before the
	// external tool was invoked (e.g. an empty URL)
	ErrorKindInvalidInput ErrorKind = "InvalidInput"

	// ErrorKindToolNotInstalled means the downloader executable is missing
	ErrorKindToolNotInstalled ErrorKind = "ToolNotInstalled"

	// ErrorKindExternalToolFailure means the tool ran but exited non-zero
	// during a metadata fetch
	ErrorKindExternalToolFailure ErrorKind = "ExternalToolFailure"

	// ErrorKindMalformedResponse means the tool output was not the expected
	// JSON document
	ErrorKindMalformedResponse ErrorKind = "MalformedResponse"

	// ErrorKindDownloadFailure means the tool exited non-zero during a
	// download
	ErrorKindDownloadFailure ErrorKind = "DownloadFailure"

	// ErrorKindUnknown covers any uncategorized failure
	ErrorKindUnknown ErrorKind = "Unknown"
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	return string(k)
}
