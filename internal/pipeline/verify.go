package pipeline

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// verifyArtifact checks that a rendered contact sheet is a decodable
// image with nonzero dimensions. ffmpeg can exit zero and still leave
// a truncated file behind when the muxer is interrupted late.
func verifyArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output missing after render: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output %s is empty", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("output %s is not a valid image: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("output %s has invalid dimensions %dx%d (%s)", path, cfg.Width, cfg.Height, format)
	}
	return nil
}
