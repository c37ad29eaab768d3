package payload

import (
	"testing"
	"time"

	"github.com/ebelikov/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
)

func fixedClock() *Encoder {
	return NewEncoderWithClock(func() time.Time { return fixedNow })
}

func TestEncoder_DispatchesPerType(t *testing.T) {
	enc := fixedClock()

	tests := []struct {
		name string
		in   models.QRContent
		want string
	}{
		{
			name: "url is identity",
			in:   models.QRContent{Type: models.TypeURL, Raw: "https://example.com/a?b=1"},
			want: "https://example.com/a?b=1",
		},
		{
			name: "text is identity",
			in:   models.QRContent{Type: models.TypeText, Raw: "just words"},
			want: "just words",
		},
		{
			name: "phone becomes tel uri",
			in:   models.QRContent{Type: models.TypePhone, Raw: "+15550001111"},
			want: "tel:+15550001111",
		},
		{
			name: "wifi record",
			in: models.QRContent{Type: models.TypeWifi, Wifi: &models.WifiCredentials{
				SSID: "net", Password: "pw", Security: models.WifiWPA2,
			}},
			want: "WIFI:T:WPA2;S:net;P:pw;H:false;;",
		},
		{
			name: "location record",
			in: models.QRContent{Type: models.TypeLocation, Location: &models.GeoLocation{
				Latitude: "1", Longitude: "2",
			}},
			want: "geo:1,2",
		},
		{
			name: "email record",
			in: models.QRContent{Type: models.TypeEmail, Email: &models.EmailMessage{
				Recipient: "a@b.co", Subject: "s",
			}},
			want: "mailto:a@b.co?subject=s",
		},
		{
			name: "sms record",
			in:   models.QRContent{Type: models.TypeSMS, SMS: &models.SmsMessage{Number: "123", Body: "x"}},
			want: "sms:123?body=x",
		},
		{
			name: "whatsapp shares the sms record",
			in:   models.QRContent{Type: models.TypeWhatsApp, SMS: &models.SmsMessage{Number: "+1 23"}},
			want: "https://wa.me/123",
		},
		{
			name: "crypto record",
			in:   models.QRContent{Type: models.TypeCrypto, Crypto: &models.CryptoPayment{Currency: "BTC", Address: "bc1q"}},
			want: "btc:bc1q",
		},
		{
			name: "unknown type falls back to raw text",
			in:   models.QRContent{Type: "hologram", Raw: "fallback"},
			want: "fallback",
		},
		{
			name: "typed record missing falls back to raw",
			in:   models.QRContent{Type: models.TypeWifi, Raw: "plan b"},
			want: "plan b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enc.Encode(tt.in))
		})
	}
}

func TestEncoder_VCardDispatch(t *testing.T) {
	enc := fixedClock()
	got := enc.Encode(models.QRContent{Type: models.TypeVCard, Contact: &models.ContactCard{FullName: "John Doe"}})

	assert.Contains(t, got, "BEGIN:VCARD")
	assert.Contains(t, got, "FN:John Doe")
}

func TestEncoder_EventUsesInjectedClock(t *testing.T) {
	enc := fixedClock()
	in := models.QRContent{Type: models.TypeEvent, Event: &models.CalendarEvent{
		Title:     "Sync",
		StartDate: "2024-06-01T10:00:00Z",
	}}

	first := enc.Encode(in)
	second := enc.Encode(in)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "DTSTAMP:20240601T093000Z")
}

func TestEncoder_Deterministic(t *testing.T) {
	enc := fixedClock()
	in := models.QRContent{Type: models.TypeWifi, Wifi: &models.WifiCredentials{SSID: "s", Security: "WPA"}}

	assert.Equal(t, enc.Encode(in), enc.Encode(in))
}

func TestEncoder_NeverPanicsOnZeroValue(t *testing.T) {
	enc := NewEncoder()

	assert.NotPanics(t, func() {
		_ = enc.Encode(models.QRContent{})
	})
	assert.Equal(t, "", enc.Encode(models.QRContent{}))
}
