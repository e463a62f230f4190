package download

// Package download implements the fetch/select/download orchestrator on top of
// the yt-dlp CLI. It owns the workflow state machine, runs blocking subprocess
// work off the UI's execution context, and reports results, progress lines,
// and failures through a callback surface the presentation layer provides.
