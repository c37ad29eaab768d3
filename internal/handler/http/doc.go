// Package http contains the HTTP transport layer of the go-qr-studio server:
// route registration, request handlers for payload encoding, QR rendering,
// password protection, media signing, and bulk generation, plus the
// middleware chain (tracing, logging, gzip).
package http
