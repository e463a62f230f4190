package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, the yt-dlp CLI runner, and OS open/reveal.
