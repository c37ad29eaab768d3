package payload

import "strings"

// vcardEscaper escapes the characters that are structurally significant
// inside vCard 3.0 compound values (ADR, NOTE). The backslash is replaced
// first so already-escaped sequences are not escaped twice. Real newlines
// become the literal two-character sequence `\n`.
var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// icalEscaper applies RFC 5545 §3.3.11 TEXT escaping: backslash first,
// then semicolon and comma, with newlines folded into the literal `\n`.
var icalEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// wifiEscaper escapes the delimiters of the WIFI: URI convention wherever
// they appear in an SSID or password.
var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	":", `\:`,
	`"`, `\"`,
)

// EscapeVCard makes arbitrary user text safe inside a vCard compound field.
// Unescapable input (control characters and the like) passes through
// unchanged; this is a permissive policy matching scanner tolerance, not a
// validator.
func EscapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}

// EscapeICal makes arbitrary user text safe inside an iCalendar TEXT value.
func EscapeICal(s string) string {
	return icalEscaper.Replace(s)
}

// EscapeWifi makes arbitrary user text safe inside the S: and P: fields of
// a WIFI: payload.
func EscapeWifi(s string) string {
	return wifiEscaper.Replace(s)
}

// QueryEscape percent-encodes s for use as a query value in mailto:, sms:
// and geo: URIs. It leaves the unreserved set A-Za-z0-9 - _ . ! ~ * ' ( )
// untouched, matching what browsers emit for these schemes, and encodes a
// space as %20 rather than "+".
func QueryEscape(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' ||
			c == '*' || c == '\'' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}

	return b.String()
}
