package payload

import (
	"fmt"

	"github.com/ebelikov/go-qr-studio/models"
)

// EncodeWifi produces the WIFI: join payload:
//
//	WIFI:T:<security>;S:<ssid>;P:<password>;H:<true|false>;;
//
// SSID and password are escaped with EscapeWifi. When security is nopass the
// P field is emitted empty regardless of the Password value. Security values
// outside the known set are passed through verbatim so that future modes keep
// working without a code change. The trailing double semicolon is required by
// some scanners and is always preserved.
func EncodeWifi(w models.WifiCredentials) string {
	password := w.Password
	if w.Security == models.WifiNoPass {
		password = ""
	}

	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%t;;",
		w.Security,
		EscapeWifi(w.SSID),
		EscapeWifi(password),
		w.Hidden,
	)
}
