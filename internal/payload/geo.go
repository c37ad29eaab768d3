package payload

import (
	"fmt"

	"github.com/ebelikov/go-qr-studio/models"
)

// EncodeGeo produces a geo: URI. The minimal form is "geo:<lat>,<lon>";
// when a human-readable label is supplied it is appended as a query so map
// applications show a named pin:
//
//	geo:<lat>,<lon>?q=<lat>,<lon>(<label>)
//
// Coordinates are embedded uninterpreted; numeric validation is the caller's
// concern.
func EncodeGeo(g models.GeoLocation) string {
	if g.Address == "" {
		return fmt.Sprintf("geo:%s,%s", g.Latitude, g.Longitude)
	}

	return fmt.Sprintf("geo:%s,%s?q=%s,%s(%s)",
		g.Latitude, g.Longitude,
		g.Latitude, g.Longitude,
		QueryEscape(g.Address),
	)
}
