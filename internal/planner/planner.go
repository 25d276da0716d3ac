package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/backmassage/sheetmaster/internal/config"
)

// Sentinel errors for plan rejection. All are detected before any render
// cost is incurred.
var (
	ErrInvalidConfig = errors.New("invalid sheet configuration")
	ErrEmptyVideo    = errors.New("video has zero duration")
	ErrNoThumbnails  = errors.New("no thumbnails would be sampled")
)

// SheetPlan is the derived, read-only layout for one contact sheet.
type SheetPlan struct {
	ThumbnailCount int
	Rows           int
	Filter         VideoFilter
}

// BuildPlan computes the thumbnail count and grid rows for a video of the
// given duration under cfg's geometry.
//
// Config is rejected before any arithmetic; a zero duration is rejected
// because sampling a zero-length video is meaningless. The no-thumbnails
// guard is defensive: with duration > 0 and interval > 0 the ceiling always
// yields at least one sample.
func BuildPlan(durationSeconds float64, cfg *config.Config) (*SheetPlan, error) {
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("%w: interval %v must be positive", ErrInvalidConfig, cfg.Interval)
	}
	if cfg.Columns <= 0 {
		return nil, fmt.Errorf("%w: columns %d must be positive", ErrInvalidConfig, cfg.Columns)
	}
	if cfg.ThumbHeight <= 0 {
		return nil, fmt.Errorf("%w: thumbnail height %d must be positive", ErrInvalidConfig, cfg.ThumbHeight)
	}

	if durationSeconds == 0 {
		return nil, ErrEmptyVideo
	}

	count := int(math.Ceil(durationSeconds / cfg.Interval))
	if count <= 0 {
		// Unreachable for finite positive durations; catches negative and
		// non-finite inputs, whose float-to-int conversion is negative.
		return nil, ErrNoThumbnails
	}

	rows := (count + cfg.Columns - 1) / cfg.Columns

	return &SheetPlan{
		ThumbnailCount: count,
		Rows:           rows,
		Filter: VideoFilter{
			Interval:    cfg.Interval,
			ThumbHeight: cfg.ThumbHeight,
			Columns:     cfg.Columns,
			Rows:        rows,
			Padding:     cfg.Padding,
			Margin:      cfg.Margin,
			FontSize:    defaultFontSize,
		},
	}, nil
}
