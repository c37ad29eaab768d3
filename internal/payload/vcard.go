package payload

import (
	"strings"

	"github.com/ebelikov/go-qr-studio/models"
)

// EncodeVCard emits a vCard 3.0 contact. Lines appear in a stable order
// (FN, N, ORG, TITLE, TEL, EMAIL, URL, ADR, NOTE) and fields with empty
// values are omitted entirely, never emitted with an empty value.
//
// Lines are joined with a bare "\n". Strict RFC 2426 would use CRLF; the
// scanners this output targets accept "\n", so it is kept for compatibility
// with existing codes.
func EncodeVCard(c models.ContactCard) string {
	lines := make([]string, 0, 11)
	lines = append(lines, "BEGIN:VCARD", "VERSION:3.0")

	if fn := displayName(c); fn != "" {
		lines = append(lines, "FN:"+fn)
	}
	if n := structuredName(c); n != "" {
		lines = append(lines, "N:"+n)
	}
	if c.Organization != "" {
		lines = append(lines, "ORG:"+c.Organization)
	}
	if c.Title != "" {
		lines = append(lines, "TITLE:"+c.Title)
	}
	if c.Phone != "" {
		lines = append(lines, "TEL:"+c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, "EMAIL:"+c.Email)
	}
	if c.Website != "" {
		lines = append(lines, "URL:"+c.Website)
	}
	if c.Address != "" {
		// the whole address goes into the street slot, all other ADR
		// components stay empty
		lines = append(lines, "ADR:;;"+EscapeVCard(c.Address)+";;;;")
	}
	if c.Note != "" {
		lines = append(lines, "NOTE:"+EscapeVCard(c.Note))
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// displayName resolves the FN value: an explicit FullName wins, otherwise
// first and last names are joined.
func displayName(c models.ContactCard) string {
	if c.FullName != "" {
		return c.FullName
	}

	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// structuredName builds the N value "Last;First;;;". When only a full name
// is known it is split on whitespace with the final token taken as the
// surname and everything before it as the given name; a single token lands
// in the surname slot alone.
func structuredName(c models.ContactCard) string {
	first, last := c.FirstName, c.LastName

	if first == "" && last == "" {
		parts := strings.Fields(c.FullName)
		switch len(parts) {
		case 0:
			return ""
		case 1:
			last = parts[0]
		default:
			last = parts[len(parts)-1]
			first = strings.Join(parts[:len(parts)-1], " ")
		}
	}

	return last + ";" + first + ";;;"
}
