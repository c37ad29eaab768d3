package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/ebelikov/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPNG_DefaultOptions(t *testing.T) {
	png, err := PNG("https://example.com", models.RenderOptions{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG")
}

func TestPNG_SizeValidation(t *testing.T) {
	_, err := PNG("x", models.RenderOptions{Size: 16})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = PNG("x", models.RenderOptions{Size: 4096})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = PNG("x", models.RenderOptions{Size: 256})
	assert.NoError(t, err)
}

func TestPNG_CustomColors(t *testing.T) {
	png, err := PNG("payload", models.RenderOptions{
		Size:       256,
		Foreground: "#1a2b3c",
		Background: "#fff",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestPNG_InvalidColorRejected(t *testing.T) {
	_, err := PNG("payload", models.RenderOptions{Foreground: "red"})
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = PNG("payload", models.RenderOptions{Background: "#12345"})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestPNG_EmptyPayloadFails(t *testing.T) {
	_, err := PNG("", models.RenderOptions{})
	assert.Error(t, err)
}

func TestDataURL(t *testing.T) {
	url, err := DataURL("https://example.com", models.RenderOptions{Size: 128, Level: models.ECHigh})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	assert.Greater(t, len(url), len("data:image/png;base64,"))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"long form", "#0a141e", color.RGBA{R: 0x0A, G: 0x14, B: 0x1E, A: 0xFF}},
		{"short form expands", "#f0a", color.RGBA{R: 0xFF, G: 0x00, B: 0xAA, A: 0xFF}},
		{"white", "#ffffff", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.in, color.Black)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexColor_EmptyUsesFallback(t *testing.T) {
	got, err := parseHexColor("", color.White)
	require.NoError(t, err)
	assert.Equal(t, color.White, got)
}
