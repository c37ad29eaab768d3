// Package render rasterises payload strings into QR code images. The matrix
// generation itself (masking, Reed-Solomon error correction) is fully
// delegated to github.com/skip2/go-qrcode; this package only maps the
// application's styling options onto it.
package render

import (
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/ebelikov/go-qr-studio/models"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 512
	minSize     = 64
	maxSize     = 2048
)

// PNG renders payload into a PNG image honoring size, foreground/background
// colors and the requested error-correction level. A zero size falls back to
// defaultSize; sizes outside [minSize, maxSize] are rejected rather than
// silently clamped so API callers learn about the limit.
func PNG(payload string, opts models.RenderOptions) ([]byte, error) {
	size := opts.Size
	if size == 0 {
		size = defaultSize
	}
	if size < minSize || size > maxSize {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidSize, size, minSize, maxSize)
	}

	qr, err := qrcode.New(payload, recoveryLevel(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("building qr matrix: %w", err)
	}

	fg, err := parseHexColor(opts.Foreground, color.Black)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := parseHexColor(opts.Background, color.White)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	qr.ForegroundColor = fg
	qr.BackgroundColor = bg

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("rendering qr png: %w", err)
	}

	return png, nil
}

// DataURL renders payload to PNG and wraps it in a base64 data URL suitable
// for direct embedding into an <img> element.
func DataURL(payload string, opts models.RenderOptions) (string, error) {
	png, err := PNG(payload, opts)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// recoveryLevel maps the API's L/M/Q/H values onto the library's enum.
// Unknown and empty values default to Medium.
func recoveryLevel(level models.ErrorCorrection) qrcode.RecoveryLevel {
	switch level {
	case models.ECLow:
		return qrcode.Low
	case models.ECQuartile:
		return qrcode.High // skip2 names Q "High"
	case models.ECHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// parseHexColor parses "#RRGGBB" or "#RGB". An empty value yields fallback.
func parseHexColor(s string, fallback color.Color) (color.Color, error) {
	if s == "" {
		return fallback, nil
	}

	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
