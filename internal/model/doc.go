package model

// Package model defines domain data structures used across the app: discovered
// video formats, fetch results, download jobs, and the orchestrator phase enum.
// Structures are designed for direct rendering in the UI and explicit state
// transitions.
