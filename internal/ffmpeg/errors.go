package ffmpeg

import "regexp"

// Pre-compiled regexes for classifying ffmpeg stderr into actionable hints.
// Checked in order by [ClassifyStderr]; the first match wins. Hints are
// informational only; a failed render is never retried.
var (
	reFontIssue = regexp.MustCompile(
		`(?i)No such filter: 'drawtext'|` +
			`Fontconfig error|` +
			`Cannot find a valid font|` +
			`impossible to init fontconfig`)

	reTileIssue = regexp.MustCompile(
		`(?i)Invalid .*layout|` +
			`Error initializing filter 'tile'|` +
			`No such filter: 'tile'`)

	reInputIssue = regexp.MustCompile(
		`(?i)No such file or directory|` +
			`Invalid data found when processing input|` +
			`moov atom not found|` +
			`Permission denied`)

	reEncoderIssue = regexp.MustCompile(
		`(?i)Unknown encoder|` +
			`Error while opening encoder|` +
			`Unable to find a suitable output format`)
)

// ClassifyStderr maps known ffmpeg failure patterns to a short hint for the
// log. Returns "" when nothing matches.
func ClassifyStderr(stderr string) string {
	switch {
	case reFontIssue.MatchString(stderr):
		return "ffmpeg cannot draw timestamps; check that it was built with drawtext/fontconfig and a font is installed"
	case reTileIssue.MatchString(stderr):
		return "ffmpeg rejected the tile layout; check that it supports the tile filter"
	case reInputIssue.MatchString(stderr):
		return "the input video could not be read; it may be missing, unreadable, or corrupt"
	case reEncoderIssue.MatchString(stderr):
		return "ffmpeg lacks an encoder for the chosen output format"
	default:
		return ""
	}
}
