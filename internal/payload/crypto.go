package payload

import (
	"strings"

	"github.com/ebelikov/go-qr-studio/models"
)

// EncodeCrypto composes a payment URI of the form
// "<currency>:<address>?amount=<amount>" with the currency lowercased.
// amount is the only parameter carried; no further BIP 21 fields are
// required by the wallets this output targets.
func EncodeCrypto(p models.CryptoPayment) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(p.Currency))
	b.WriteString(":")
	b.WriteString(p.Address)

	if p.Amount != "" {
		b.WriteString("?amount=")
		b.WriteString(p.Amount)
	}

	return b.String()
}
