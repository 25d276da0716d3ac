package planner

import (
	"strconv"
	"strings"
)

// defaultFontSize is the drawtext size for the timestamp label.
const defaultFontSize = 24

// VideoFilter is the structured form of the contact sheet filtergraph.
// Every field is a validated number; String is the only place the textual
// ffmpeg form is produced.
//
// The four stages, in order:
//
//	fps:      sample one frame every Interval seconds
//	scale:    fixed thumbnail height, width follows the aspect ratio
//	drawtext: HH:MM:SS presentation timestamp in the top-left corner,
//	           over a semi-opaque box for legibility
//	tile:     Columns x Rows grid with cell padding and an outer margin
type VideoFilter struct {
	Interval    float64
	ThumbHeight int
	Columns     int
	Rows        int
	Padding     int
	Margin      int
	FontSize    int
}

// String serializes the filter chain to ffmpeg's -vf syntax.
func (f VideoFilter) String() string {
	var b strings.Builder

	b.WriteString("fps=1/")
	b.WriteString(formatInterval(f.Interval))

	b.WriteString(",scale=-1:")
	b.WriteString(strconv.Itoa(f.ThumbHeight))

	b.WriteString(",drawtext=text='%{pts\\:hms}'")
	b.WriteString(":x=10:y=10:fontsize=")
	b.WriteString(strconv.Itoa(f.FontSize))
	b.WriteString(":fontcolor=white@0.8:box=1:boxcolor=black@0.5:boxborderw=5")

	b.WriteString(",tile=layout=")
	b.WriteString(strconv.Itoa(f.Columns))
	b.WriteString("x")
	b.WriteString(strconv.Itoa(f.Rows))
	b.WriteString(":padding=")
	b.WriteString(strconv.Itoa(f.Padding))
	b.WriteString(":margin=")
	b.WriteString(strconv.Itoa(f.Margin))

	return b.String()
}

// formatInterval renders the sampling interval without a trailing zero tail
// ("30", not "30.000000"), keeping the filtergraph readable in logs.
func formatInterval(interval float64) string {
	return strconv.FormatFloat(interval, 'g', -1, 64)
}
