// Package planner derives the contact sheet layout from a probed duration
// and the configured geometry, and builds the ffmpeg filter chain that
// renders it.
//
// BuildPlan is a pure function: same duration and config always produce the
// same SheetPlan or the same error, with no side effects. The filter chain
// is modeled as a struct of validated integers (VideoFilter) and serialized
// to ffmpeg's textual form only at the invocation boundary, so nothing
// user-controlled is ever interpolated into the filtergraph.
package planner
