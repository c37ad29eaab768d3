package models

// SignedURLRequest is the body of POST /api/media/sign: a bucket/path pair
// identifying previously uploaded media (logos embedded into QR frames).
type SignedURLRequest struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
}

// SignedURLResponse carries a time-limited capability URL. ExpiresIn is the
// remaining lifetime in seconds at issue time.
type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn"`
}
