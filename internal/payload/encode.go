package payload

import (
	"time"

	"github.com/ebelikov/go-qr-studio/models"
)

// Encoder dispatches a QRContent record to the encoder matching its content
// type. The only state is the clock feeding the iCalendar encoder, so an
// Encoder is safe for concurrent use.
type Encoder struct {
	now func() time.Time
}

// NewEncoder returns an Encoder backed by the wall clock.
func NewEncoder() *Encoder {
	return &Encoder{now: time.Now}
}

// NewEncoderWithClock returns an Encoder whose iCalendar UID/DTSTAMP values
// come from the supplied clock. Intended for tests that need deterministic
// event output.
func NewEncoderWithClock(now func() time.Time) *Encoder {
	return &Encoder{now: now}
}

// Encode selects and invokes exactly one per-type encoder and returns the
// payload string. Unknown or unimplemented types, and records whose typed
// input is missing, fall back to the raw free-text field; Encode never
// returns an error and never panics.
func (e *Encoder) Encode(c models.QRContent) string {
	switch c.Type {
	case models.TypeWifi:
		if c.Wifi != nil {
			return EncodeWifi(*c.Wifi)
		}
	case models.TypeVCard:
		if c.Contact != nil {
			return EncodeVCard(*c.Contact)
		}
	case models.TypeEvent:
		if c.Event != nil {
			return EncodeEvent(*c.Event, e.now())
		}
	case models.TypeLocation:
		if c.Location != nil {
			return EncodeGeo(*c.Location)
		}
	case models.TypeEmail:
		if c.Email != nil {
			return EncodeMailto(*c.Email)
		}
	case models.TypeSMS:
		if c.SMS != nil {
			return EncodeSMS(*c.SMS)
		}
	case models.TypeWhatsApp:
		if c.SMS != nil {
			return EncodeWhatsApp(*c.SMS)
		}
	case models.TypeCrypto:
		if c.Crypto != nil {
			return EncodeCrypto(*c.Crypto)
		}
	case models.TypePhone:
		if c.Raw != "" {
			return EncodeTel(c.Raw)
		}
	case models.TypeURL, models.TypeText:
		return c.Raw
	}

	return c.Raw
}
