// Package pipeline orchestrates video discovery, selection, and the
// sequential probe → plan → render flow for each chosen video, with
// per-video failure recovery and aggregate reporting.
package pipeline
