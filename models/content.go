package models

// ContentType selects which payload encoder applies to a QRContent record.
// Exactly one content type is active per generation.
type ContentType string

const (
	TypeURL      ContentType = "url"
	TypeText     ContentType = "text"
	TypeEmail    ContentType = "email"
	TypePhone    ContentType = "phone"
	TypeSMS      ContentType = "sms"
	TypeWhatsApp ContentType = "whatsapp"
	TypeWifi     ContentType = "wifi"
	TypeVCard    ContentType = "vcard"
	TypeEvent    ContentType = "event"
	TypeLocation ContentType = "location"
	TypeCrypto   ContentType = "crypto"
)

// WifiSecurity values accepted by scanners in the WIFI: scheme.
// Values outside this set are passed through verbatim for
// forward-compatibility with future security modes.
const (
	WifiWPA    = "WPA"
	WifiWPA2   = "WPA2"
	WifiWPA3   = "WPA3"
	WifiWEP    = "WEP"
	WifiNoPass = "nopass"
)

// WifiCredentials describes a wireless network join payload.
// Password is ignored when Security is WifiNoPass.
type WifiCredentials struct {
	SSID     string `json:"ssid"`
	Password string `json:"password,omitempty"`
	Security string `json:"security"`
	Hidden   bool   `json:"hidden"`
}

// ContactCard holds the fields of a vCard 3.0 contact. Every field is
// optional; encoders omit lines for empty values. FullName takes precedence
// over FirstName/LastName when both are present.
type ContactCard struct {
	FullName     string `json:"fullName,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Organization string `json:"organization,omitempty"`
	Title        string `json:"title,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Website      string `json:"website,omitempty"`
	Address      string `json:"address,omitempty"`
	Note         string `json:"note,omitempty"`
}

// CalendarEvent holds the fields of an iCalendar VEVENT.
//
// StartDate and EndDate are the raw form values: "YYYY-MM-DD" for all-day
// events, RFC 3339-ish timestamps otherwise. The encoder normalises them to
// bare YYYYMMDD or UTC YYYYMMDDTHHMMSSZ depending on AllDay.
type CalendarEvent struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate,omitempty"`
	AllDay         bool   `json:"allDay"`
	OrganizerName  string `json:"organizerName,omitempty"`
	OrganizerEmail string `json:"organizerEmail,omitempty"`
}

// GeoLocation is a geo: URI payload. Coordinates are kept as strings and
// passed through uninterpreted; no numeric validation happens in the
// encoding layer.
type GeoLocation struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Address   string `json:"address,omitempty"`
}

// EmailMessage composes a mailto: URI.
type EmailMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body,omitempty"`
}

// SmsMessage composes an sms: URI. The same record backs the WhatsApp
// wa.me link, which only uses Number and Body.
type SmsMessage struct {
	Number string `json:"number"`
	Body   string `json:"body,omitempty"`
}

// CryptoPayment composes a <currency>:<address>?amount= payment URI.
type CryptoPayment struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
	Amount   string `json:"amount,omitempty"`
}

// QRContent is the dispatcher input: the active content type plus the
// per-type record that backs it. Only the record matching Type is consulted;
// Raw carries the free-text value for the url/text/phone types and is the
// fallback payload for unknown types.
type QRContent struct {
	Type ContentType `json:"type"`

	Raw      string           `json:"raw,omitempty"`
	Wifi     *WifiCredentials `json:"wifi,omitempty"`
	Contact  *ContactCard     `json:"contact,omitempty"`
	Event    *CalendarEvent   `json:"event,omitempty"`
	Location *GeoLocation     `json:"location,omitempty"`
	Email    *EmailMessage    `json:"email,omitempty"`
	SMS      *SmsMessage      `json:"sms,omitempty"`
	Crypto   *CryptoPayment   `json:"crypto,omitempty"`
}
