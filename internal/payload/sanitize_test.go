package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeVCard(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "221B Baker Street", "221B Baker Street"},
		{"semicolon", "a;b", `a\;b`},
		{"comma", "a,b", `a\,b`},
		{"backslash escaped first", `a\;b`, `a\\\;b`},
		{"newline becomes literal", "line1\nline2", `line1\nline2`},
		{"crlf becomes single literal", "line1\r\nline2", `line1\nline2`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeVCard(tt.in))
		})
	}
}

func TestEscapeICal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "team sync", "team sync"},
		{"all specials", `a\b;c,d`, `a\\b\;c\,d`},
		{"newline becomes literal", "agenda:\n- item", `agenda:\n- item`},
		{"no double escaping of backslash", `\n`, `\\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeICal(tt.in))
		})
	}
}

func TestEscapeWifi(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ssid untouched", "HomeNet", "HomeNet"},
		{"semicolon", "My Net;1", `My Net\;1`},
		{"colon", "p@ss:1", `p@ss\:1`},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"comma and backslash", `a,b\c`, `a\,b\\c`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeWifi(tt.in))
		})
	}
}

func TestQueryEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"space is %20 not plus", "hello world", "hello%20world"},
		{"unreserved set untouched", "A-z0_9.!~*'()", "A-z0_9.!~*'()"},
		{"ampersand and equals encoded", "a=b&c", "a%3Db%26c"},
		{"utf8 bytes percent encoded", "café", "caf%C3%A9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QueryEscape(tt.in))
		})
	}
}

// Control characters pass through unchanged: the sanitizer is deliberately
// permissive, not a format validator.
func TestEscapeVCard_ControlCharactersPassThrough(t *testing.T) {
	assert.Equal(t, "a\tb", EscapeVCard("a\tb"))
}
