// Package validators holds the gating logic that decides whether a content
// record is meaningful enough to render as a QR code. Encoders themselves
// never reject input; the checks here run before rendering so that a
// half-filled form (an empty SSID, a placeholder URL) is not turned into a
// useless code.
//
// Implementations are injected into services and handlers, keeping the rules
// out of the transport layer and independently testable.
package validators

import "context"

// Validator validates arbitrary input values. Implementations perform
// structural and cross-field checks and return a sentinel error describing
// the first rule violated.
type Validator interface {
	Validate(context.Context, any) error
}
