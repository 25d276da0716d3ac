// Package naming derives contact sheet output paths from video file names
// and resolves in-batch collisions when several inputs would claim the same
// sheet path.
package naming
