// Package picture decodes uploaded images once their declared dimensions have
// been checked against fixed limits.
package picture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	MaxSide   = 8192
	MaxPixels = 16 << 20
)

var ErrTooLarge = errors.New("image dimensions too large")

// Config reads only the image header and rejects images whose canvas exceeds
// MaxSide on either axis or MaxPixels in area.
func Config(data []byte) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return cfg, format, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, format, fmt.Errorf("empty %s image %dx%d", format, cfg.Width, cfg.Height)
	}
	if cfg.Width > MaxSide || cfg.Height > MaxSide || cfg.Width*cfg.Height > MaxPixels {
		return cfg, format, fmt.Errorf("%w: %s %dx%d", ErrTooLarge, format, cfg.Width, cfg.Height)
	}
	return cfg, format, nil
}

// Decode checks the header with Config before decoding pixel data.
func Decode(data []byte) (image.Image, string, error) {
	if _, _, err := Config(data); err != nil {
		return nil, "", err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}
