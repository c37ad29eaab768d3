package payload

import (
	"strings"

	"github.com/ebelikov/go-qr-studio/models"
)

// EncodeMailto composes a mailto: URI. Subject and body are percent-encoded
// independently; empty optional fields are omitted from the query entirely
// rather than sent as empty-valued parameters.
func EncodeMailto(m models.EmailMessage) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(m.Recipient)

	writeQuery(&b, map[string]string{"subject": m.Subject, "body": m.Body}, []string{"subject", "body"})

	return b.String()
}

// EncodeSMS composes an sms: URI with an optional percent-encoded body.
func EncodeSMS(m models.SmsMessage) string {
	var b strings.Builder
	b.WriteString("sms:")
	b.WriteString(m.Number)

	writeQuery(&b, map[string]string{"body": m.Body}, []string{"body"})

	return b.String()
}

// EncodeTel composes a tel: URI from the raw number.
func EncodeTel(number string) string {
	return "tel:" + number
}

// EncodeWhatsApp composes a wa.me chat link. The number is reduced to its
// digits since wa.me rejects "+", spaces and separators; an optional
// prefilled message rides in the text parameter.
func EncodeWhatsApp(m models.SmsMessage) string {
	var b strings.Builder
	b.WriteString("https://wa.me/")
	b.WriteString(digitsOnly(m.Number))

	writeQuery(&b, map[string]string{"text": m.Body}, []string{"text"})

	return b.String()
}

// writeQuery appends "?k=v&k=v" for the non-empty parameters, preserving the
// given key order so output stays byte-stable.
func writeQuery(b *strings.Builder, params map[string]string, order []string) {
	sep := "?"
	for _, key := range order {
		value := params[key]
		if value == "" {
			continue
		}

		b.WriteString(sep)
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(QueryEscape(value))
		sep = "&"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
