package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the download orchestrator and
// renders the quality catalog, the busy indicator, and the status log. Both
// app variants share this package and differ only in theme.
