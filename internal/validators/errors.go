package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrNoContent       = errors.New("no content provided")
	ErrPlaceholderURL  = errors.New("url is still the placeholder value")
	ErrMissingSSID     = errors.New("wifi network name is required")
	ErrMissingPassword = errors.New("wifi password is required for secured networks")
	ErrMissingName     = errors.New("at least one contact name field is required")
	ErrMissingTitle    = errors.New("event title is required")
	ErrMissingStart    = errors.New("event start date is required")
	ErrMissingLatLon   = errors.New("both latitude and longitude are required")
	ErrMissingAddress  = errors.New("wallet address is required")
	ErrMissingNumber   = errors.New("phone number is required")
	ErrMissingEmail    = errors.New("recipient email is required")
)
