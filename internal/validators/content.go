package validators

import (
	"context"
	"strings"

	"github.com/ebelikov/go-qr-studio/models"
)

// urlPlaceholders are the default form values a URL field starts with.
// A value that is still one of these carries no real content and must not
// be rendered.
var urlPlaceholders = []string{
	"https://",
	"http://",
	"https://www.",
	"http://www.",
}

// ContentValidator implements Validator for models.QRContent and the
// per-type input records. Both value and pointer forms are accepted.
type ContentValidator struct {
}

// NewContentValidator constructs a ContentValidator and returns it as the
// Validator interface.
func NewContentValidator() Validator {
	return &ContentValidator{}
}

// Validate dispatches to the check matching the dynamic type of obj.
// Returns ErrUnsupportedType for anything it does not know about.
func (v *ContentValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.QRContent:
		return v.validateContent(ctx, value)
	case *models.QRContent:
		return v.validateContent(ctx, *value)

	case models.WifiCredentials:
		return v.validateWifi(value)
	case *models.WifiCredentials:
		return v.validateWifi(*value)

	case models.ContactCard:
		return v.validateContact(value)
	case *models.ContactCard:
		return v.validateContact(*value)

	case models.CalendarEvent:
		return v.validateEvent(value)
	case *models.CalendarEvent:
		return v.validateEvent(*value)

	case models.GeoLocation:
		return v.validateGeo(value)
	case *models.GeoLocation:
		return v.validateGeo(*value)

	case models.EmailMessage:
		return v.validateEmail(value)
	case *models.EmailMessage:
		return v.validateEmail(*value)

	case models.SmsMessage:
		return v.validateSms(value)
	case *models.SmsMessage:
		return v.validateSms(*value)

	case models.CryptoPayment:
		return v.validateCrypto(value)
	case *models.CryptoPayment:
		return v.validateCrypto(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateContent(ctx context.Context, c models.QRContent) error {
	switch c.Type {
	case models.TypeURL:
		return v.validateURL(c.Raw)
	case models.TypeText:
		if strings.TrimSpace(c.Raw) == "" {
			return ErrNoContent
		}
		return nil
	case models.TypePhone:
		if strings.TrimSpace(c.Raw) == "" {
			return ErrMissingNumber
		}
		return nil
	case models.TypeWifi:
		if c.Wifi == nil {
			return ErrNoContent
		}
		return v.validateWifi(*c.Wifi)
	case models.TypeVCard:
		if c.Contact == nil {
			return ErrNoContent
		}
		return v.validateContact(*c.Contact)
	case models.TypeEvent:
		if c.Event == nil {
			return ErrNoContent
		}
		return v.validateEvent(*c.Event)
	case models.TypeLocation:
		if c.Location == nil {
			return ErrNoContent
		}
		return v.validateGeo(*c.Location)
	case models.TypeEmail:
		if c.Email == nil {
			return ErrNoContent
		}
		return v.validateEmail(*c.Email)
	case models.TypeSMS, models.TypeWhatsApp:
		if c.SMS == nil {
			return ErrNoContent
		}
		return v.validateSms(*c.SMS)
	case models.TypeCrypto:
		if c.Crypto == nil {
			return ErrNoContent
		}
		return v.validateCrypto(*c.Crypto)
	default:
		// unknown types render the raw text, so the raw text must exist
		if strings.TrimSpace(c.Raw) == "" {
			return ErrNoContent
		}
		return nil
	}
}

// validateURL rejects empty values and values still equal to a bare scheme
// placeholder such as "https://".
func (v *ContentValidator) validateURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrNoContent
	}

	for _, placeholder := range urlPlaceholders {
		if strings.EqualFold(trimmed, placeholder) {
			return ErrPlaceholderURL
		}
	}

	return nil
}

func (v *ContentValidator) validateWifi(w models.WifiCredentials) error {
	if strings.TrimSpace(w.SSID) == "" {
		return ErrMissingSSID
	}
	if w.Security != models.WifiNoPass && w.Password == "" {
		return ErrMissingPassword
	}

	return nil
}

func (v *ContentValidator) validateContact(c models.ContactCard) error {
	if c.FullName == "" && c.FirstName == "" && c.LastName == "" {
		return ErrMissingName
	}

	return nil
}

func (v *ContentValidator) validateEvent(ev models.CalendarEvent) error {
	if strings.TrimSpace(ev.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(ev.StartDate) == "" {
		return ErrMissingStart
	}

	return nil
}

func (v *ContentValidator) validateGeo(g models.GeoLocation) error {
	if strings.TrimSpace(g.Latitude) == "" || strings.TrimSpace(g.Longitude) == "" {
		return ErrMissingLatLon
	}

	return nil
}

func (v *ContentValidator) validateEmail(m models.EmailMessage) error {
	if strings.TrimSpace(m.Recipient) == "" {
		return ErrMissingEmail
	}

	return nil
}

func (v *ContentValidator) validateSms(m models.SmsMessage) error {
	if strings.TrimSpace(m.Number) == "" {
		return ErrMissingNumber
	}

	return nil
}

func (v *ContentValidator) validateCrypto(p models.CryptoPayment) error {
	if strings.TrimSpace(p.Address) == "" {
		return ErrMissingAddress
	}

	return nil
}
