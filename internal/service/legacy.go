package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ebelikov/go-qr-studio/models"
)

// legacyEnvelope is the JSON structure base64-embedded by the old client-only
// protection scheme.
type legacyEnvelope struct {
	Content  string             `json:"content"`
	Password string             `json:"password"`
	Type     models.ContentType `json:"type"`
}

// EncodeLegacyProtected wraps a payload in the old client-only protection
// envelope: a base64-encoded JSON fragment appended to a check-page URL.
//
// Deprecated: the password travels inside the QR code itself, merely
// obfuscated. Use ProtectService, which stores only a bcrypt hash server-side
// and puts an opaque identifier in the payload. This function exists solely
// to decode and migrate codes generated by older clients.
func EncodeLegacyProtected(checkPageURL string, content models.QRContent, password string, rawPayload string) (string, error) {
	envelope := legacyEnvelope{
		Content:  rawPayload,
		Password: password,
		Type:     content.Type,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("error encoding legacy protection envelope: %w", err)
	}

	return checkPageURL + "#" + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeLegacyProtected parses a URL fragment produced by
// [EncodeLegacyProtected] back into its payload, password, and content type.
//
// Deprecated: see [EncodeLegacyProtected].
func DecodeLegacyProtected(fragment string) (rawPayload, password string, qrType models.ContentType, err error) {
	data, err := base64.StdEncoding.DecodeString(fragment)
	if err != nil {
		return "", "", "", fmt.Errorf("error decoding legacy protection envelope: %w", err)
	}

	var envelope legacyEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", "", "", fmt.Errorf("error parsing legacy protection envelope: %w", err)
	}

	return envelope.Content, envelope.Password, envelope.Type, nil
}
