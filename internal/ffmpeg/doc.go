// Package ffmpeg builds and executes the single ffmpeg invocation that
// renders a contact sheet.
//
// Build produces the argument slice from an immutable RenderRequest; the
// Renderer runs it synchronously, captures stderr, and guarantees that a
// failed render leaves no partial artifact at the output path. Failures are
// never retried; instead stderr is classified (errors.go) into a
// human-readable hint for the log.
package ffmpeg
