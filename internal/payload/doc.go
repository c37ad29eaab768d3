// Package payload converts typed content records into the exact text
// payloads a QR scanner must parse: the WIFI: join scheme, vCard 3.0,
// iCalendar VEVENT, geo:, mailto:, sms:, tel:, wa.me and crypto payment URIs.
//
// Every encoder is a total function: malformed or missing input never causes
// an error, it just yields a payload the caller may choose not to render
// (see the validators package for that gating). The only non-deterministic
// output is the iCalendar encoder, whose UID and DTSTAMP depend on the
// injected clock.
package payload
