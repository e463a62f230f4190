package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/vidgrab/vidgrab/internal/model"
)

// Sentinel values used by the external tool
const (
	CodecNone = "none"
)

// Default display values
const (
	DefaultTitle        = "Unknown"
	AudioOnlyResolution = "audio only"
	UnknownSizeLabel    = "Unknown"
)

// Display markers for the audio track
const (
	WithAudioLabel = "with audio"
	NoAudioLabel   = "no audio"
)

const bytesPerMB = 1024 * 1024

// RawFormat mirrors one entry of the "formats" array in the tool's -J output.
// Size fields arrive as null for many formats, hence the pointer-free zero
// default is treated as absent.
type RawFormat struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	Resolution     string  `json:"resolution"`
	FPS            float64 `json:"fps"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
}

// RawInfo mirrors the top-level -J document
type RawInfo struct {
	Title   string      `json:"title"`
	Formats []RawFormat `json:"formats"`
}

// DecodeRawInfo parses the tool's metadata JSON document
func DecodeRawInfo(data []byte) (*RawInfo, error) {
	var info RawInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("unexpected metadata output: %w", err)
	}
	return &info, nil
}

// dedupKey is the catalog identity: two formats with the same resolution and
// audio presence are duplicates regardless of codec, id, or size.
type dedupKey struct {
	resolution string
	hasAudio   bool
}

// Builder converts raw format lists into display catalogs
type Builder struct{}

// NewBuilder creates a new catalog builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildVideoInfo assembles the fetch result: the title (defaulted when the
// tool reports none) plus the deduplicated format catalog.
func (b *Builder) BuildVideoInfo(raw *RawInfo) model.VideoInfo {
	title := raw.Title
	if title == "" {
		title = DefaultTitle
	}
	return model.VideoInfo{
		Title:   title,
		Formats: b.Build(raw.Formats),
	}
}

// Build filters, derives, and deduplicates the raw format list. Input order is
// preserved and the first occurrence of each (resolution, audio) pair wins, so
// the catalog reflects the external tool's own ordering.
func (b *Builder) Build(raw []RawFormat) []model.Format {
	seen := make(map[dedupKey]bool)
	catalog := make([]model.Format, 0, len(raw))

	for _, rf := range raw {
		// Entries without a video stream never reach the UI
		if rf.VCodec == "" || rf.VCodec == CodecNone {
			continue
		}

		f := b.deriveFormat(rf)

		key := dedupKey{resolution: f.Resolution, hasAudio: f.HasAudio}
		if seen[key] {
			continue
		}
		seen[key] = true

		catalog = append(catalog, f)
	}

	return catalog
}

// deriveFormat maps one raw entry to its display form
func (b *Builder) deriveFormat(rf RawFormat) model.Format {
	resolution := rf.Resolution
	if resolution == "" {
		resolution = AudioOnlyResolution
	}

	size := rf.Filesize
	if size == 0 {
		size = rf.FilesizeApprox
	}

	f := model.Format{
		ID:         rf.FormatID,
		Resolution: resolution,
		FPS:        int(rf.FPS),
		Ext:        rf.Ext,
		HasAudio:   rf.ACodec != "" && rf.ACodec != CodecNone,
		SizeBytes:  size,
	}
	f.Description = b.describe(f)
	return f
}

// describe renders the one-line label shown in the quality list
func (b *Builder) describe(f model.Format) string {
	fpsInfo := ""
	if f.FPS > 0 {
		fpsInfo = fmt.Sprintf(" %dfps", f.FPS)
	}

	audioInfo := NoAudioLabel
	if f.HasAudio {
		audioInfo = WithAudioLabel
	}

	return fmt.Sprintf("%s%s (%s) - %s - %s", f.Resolution, fpsInfo, f.Ext, audioInfo, b.formatSize(f.SizeBytes))
}

// formatSize renders a byte count as megabytes with one decimal place, or the
// unknown label when no size was reported
func (b *Builder) formatSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return UnknownSizeLabel
	}
	return fmt.Sprintf("%.1fMB", float64(sizeBytes)/bytesPerMB)
}
