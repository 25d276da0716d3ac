// Package probe queries ffprobe for a video's duration and normalizes the
// edge cases of its plain-text output contract.
//
// The ffprobe invocation asks only for the container duration
// (format=duration, no wrapper text) so stdout is a single floating-point
// number. Parsing is exported separately from process execution so the
// normalization rules are testable without an ffprobe binary:
//
//   - empty output   → 0 seconds, carried as a warning note
//   - negative value → clamped to 0, carried as a warning note
//   - non-numeric    → ErrParse
//   - non-zero exit  → *ExecError with the captured stderr
//
// A failed probe is never retried.
package probe
