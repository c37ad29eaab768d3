// Package media issues short-lived signed URLs for uploaded media objects
// such as logos and frame images referenced by generated QR codes.
//
// Two backends are supported. When an S3 bucket is configured, URLs are
// presigned against S3 (or an S3-compatible endpoint such as MinIO).
// Otherwise objects are served from a local directory and access is granted
// through HMAC-signed capability tokens embedded in the URL.
package media
