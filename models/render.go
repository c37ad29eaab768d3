package models

// ErrorCorrection mirrors the four QR error-correction levels. The zero
// value is treated as ECMedium by the renderer.
type ErrorCorrection string

const (
	ECLow      ErrorCorrection = "L"
	ECMedium   ErrorCorrection = "M"
	ECQuartile ErrorCorrection = "Q"
	ECHigh     ErrorCorrection = "H"
)

// RenderOptions controls how a payload string is rasterised into a QR image.
type RenderOptions struct {
	// Size is the output image edge length in pixels.
	Size int `json:"size"`

	// Foreground and Background are hex colors ("#RRGGBB" or "#RGB").
	// Empty values fall back to black on white.
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Level ErrorCorrection `json:"level,omitempty"`
}

// RenderRequest is the body of POST /api/qr/render.
type RenderRequest struct {
	Content QRContent     `json:"content"`
	Options RenderOptions `json:"options"`
}

// RenderResponse carries the rendered image as a base64 data URL along with
// the payload that was encoded into it.
type RenderResponse struct {
	Payload string `json:"payload"`
	DataURL string `json:"dataUrl"`
}

// EncodeResponse is the body returned by POST /api/payload/encode: the exact
// payload string plus whether the gating logic considers it renderable.
type EncodeResponse struct {
	Payload    string `json:"payload"`
	Renderable bool   `json:"renderable"`
	Reason     string `json:"reason,omitempty"`
}
