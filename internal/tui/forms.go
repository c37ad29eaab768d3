package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ebelikov/go-qr-studio/models"
)

// contentTypeOptions is the wizard's type menu, in display order.
var contentTypeOptions = []models.ContentType{
	models.TypeURL,
	models.TypeText,
	models.TypeWifi,
	models.TypeVCard,
	models.TypeEvent,
	models.TypeLocation,
	models.TypeEmail,
	models.TypePhone,
	models.TypeSMS,
	models.TypeWhatsApp,
	models.TypeCrypto,
}

var contentTypeLabels = map[models.ContentType]string{
	models.TypeURL:      "Website URL",
	models.TypeText:     "Plain text",
	models.TypeWifi:     "Wi-Fi network",
	models.TypeVCard:    "Contact card",
	models.TypeEvent:    "Calendar event",
	models.TypeLocation: "Location",
	models.TypeEmail:    "E-mail",
	models.TypePhone:    "Phone call",
	models.TypeSMS:      "SMS",
	models.TypeWhatsApp: "WhatsApp",
	models.TypeCrypto:   "Crypto payment",
}

// fieldSpec describes one text input of a content form. The first field of
// every form is the history title.
type fieldSpec struct {
	label       string
	placeholder string
	masked      bool
}

func formFields(qrType models.ContentType) []fieldSpec {
	title := fieldSpec{label: "Title", placeholder: "History entry name"}

	switch qrType {
	case models.TypeURL:
		return []fieldSpec{title, {label: "URL", placeholder: "https://example.com"}}
	case models.TypeText:
		return []fieldSpec{title, {label: "Text", placeholder: "Free text"}}
	case models.TypeWifi:
		return []fieldSpec{
			title,
			{label: "SSID", placeholder: "Network name"},
			{label: "Password", placeholder: "Network password", masked: true},
			{label: "Security", placeholder: "WPA, WPA2, WPA3, WEP or nopass"},
			{label: "Hidden", placeholder: "y/n"},
		}
	case models.TypeVCard:
		return []fieldSpec{
			title,
			{label: "Full name", placeholder: "Jane Doe"},
			{label: "Organization", placeholder: "Acme Inc."},
			{label: "Job title", placeholder: "Engineer"},
			{label: "Phone", placeholder: "+15551234567"},
			{label: "E-mail", placeholder: "jane@example.com"},
			{label: "Website", placeholder: "https://example.com"},
		}
	case models.TypeEvent:
		return []fieldSpec{
			title,
			{label: "Location", placeholder: "Conference room"},
			{label: "Start", placeholder: "2026-09-01 or 2026-09-01T10:00:00Z"},
			{label: "End", placeholder: "optional"},
			{label: "All day", placeholder: "y/n"},
			{label: "Description", placeholder: "optional"},
		}
	case models.TypeLocation:
		return []fieldSpec{
			title,
			{label: "Latitude", placeholder: "48.8584"},
			{label: "Longitude", placeholder: "2.2945"},
		}
	case models.TypeEmail:
		return []fieldSpec{
			title,
			{label: "Recipient", placeholder: "someone@example.com"},
			{label: "Subject", placeholder: "optional"},
			{label: "Body", placeholder: "optional"},
		}
	case models.TypePhone:
		return []fieldSpec{title, {label: "Number", placeholder: "+15551234567"}}
	case models.TypeSMS, models.TypeWhatsApp:
		return []fieldSpec{
			title,
			{label: "Number", placeholder: "+15551234567"},
			{label: "Message", placeholder: "optional"},
		}
	case models.TypeCrypto:
		return []fieldSpec{
			title,
			{label: "Currency", placeholder: "bitcoin, ethereum or litecoin"},
			{label: "Address", placeholder: "Wallet address"},
			{label: "Amount", placeholder: "optional"},
		}
	default:
		return []fieldSpec{title, {label: "Content", placeholder: ""}}
	}
}

func newFormInputs(qrType models.ContentType) []textinput.Model {
	specs := formFields(qrType)
	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Width = 44
		if spec.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[0].Focus()
	return inputs
}

// collectContent folds the form inputs into a QRContent record. The returned
// title is the first input; content validation proper happens server-side,
// only locally required fields are checked here.
func collectContent(qrType models.ContentType, inputs []textinput.Model) (title string, content models.QRContent, err error) {
	vals := make([]string, len(inputs))
	for i := range inputs {
		vals[i] = strings.TrimSpace(inputs[i].Value())
	}

	title = vals[0]
	content = models.QRContent{Type: qrType}

	switch qrType {
	case models.TypeURL, models.TypeText, models.TypePhone:
		if vals[1] == "" {
			return "", content, fmt.Errorf("%s is required", strings.ToLower(formFields(qrType)[1].label))
		}
		content.Raw = vals[1]

	case models.TypeWifi:
		if vals[1] == "" {
			return "", content, fmt.Errorf("ssid is required")
		}
		security := vals[3]
		if security == "" {
			security = models.WifiWPA
		}
		content.Wifi = &models.WifiCredentials{
			SSID:     vals[1],
			Password: vals[2],
			Security: security,
			Hidden:   isYes(vals[4]),
		}

	case models.TypeVCard:
		content.Contact = &models.ContactCard{
			FullName:     vals[1],
			Organization: vals[2],
			Title:        vals[3],
			Phone:        vals[4],
			Email:        vals[5],
			Website:      vals[6],
		}

	case models.TypeEvent:
		if title == "" {
			return "", content, fmt.Errorf("title is required")
		}
		if vals[2] == "" {
			return "", content, fmt.Errorf("start date is required")
		}
		content.Event = &models.CalendarEvent{
			Title:       title,
			Location:    vals[1],
			StartDate:   vals[2],
			EndDate:     vals[3],
			AllDay:      isYes(vals[4]),
			Description: vals[5],
		}

	case models.TypeLocation:
		if vals[1] == "" || vals[2] == "" {
			return "", content, fmt.Errorf("latitude and longitude are required")
		}
		content.Location = &models.GeoLocation{Latitude: vals[1], Longitude: vals[2]}

	case models.TypeEmail:
		if vals[1] == "" {
			return "", content, fmt.Errorf("recipient is required")
		}
		content.Email = &models.EmailMessage{Recipient: vals[1], Subject: vals[2], Body: vals[3]}

	case models.TypeSMS, models.TypeWhatsApp:
		if vals[1] == "" {
			return "", content, fmt.Errorf("number is required")
		}
		content.SMS = &models.SmsMessage{Number: vals[1], Body: vals[2]}

	case models.TypeCrypto:
		if vals[1] == "" || vals[2] == "" {
			return "", content, fmt.Errorf("currency and address are required")
		}
		content.Crypto = &models.CryptoPayment{Currency: vals[1], Address: vals[2], Amount: vals[3]}

	default:
		content.Raw = vals[1]
	}

	return title, content, nil
}

func isYes(v string) bool {
	switch strings.ToLower(v) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
