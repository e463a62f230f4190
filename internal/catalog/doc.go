package catalog

// Package catalog transforms the raw format list reported by the external
// downloader into the deduplicated, display-ready catalog the UI offers for
// selection. It is a pure transformation: no process or network access.
