package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// mediaTokenIssuer identifies tokens minted by the local media signer.
const mediaTokenIssuer = "go-qr-studio"

// GenerateMediaToken creates a signed HMAC-SHA256 JWT that grants time-limited
// access to a single media object stored locally.
//
// The token includes the following standard claims:
//   - Issuer    (iss): always "go-qr-studio"
//   - Subject   (sub): the media object path being granted
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateMediaToken(path string, ttl time.Duration, signKey string) (string, error) {
	if path == "" || ttl == 0 || signKey == "" {
		return "", errors.New("invalid params for generating media token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    mediaTokenIssuer,
		Subject:   path,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing media token: %w", err)
	}

	return tokenString, nil
}

// ValidateMediaToken verifies the signature, issuer, and expiration of a media
// token and returns the media object path stored in its subject claim.
//
// Returns an error if validation fails, the token has expired, or the subject
// is empty.
func ValidateMediaToken(tokenString, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(mediaTokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing media token: %w", err)
	}

	path, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from media token: %w", err)
	}
	if path == "" {
		return "", errors.New("empty subject error")
	}

	return path, nil
}
