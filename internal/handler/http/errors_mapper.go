package http

import (
	"errors"
	"net/http"

	"github.com/ebelikov/go-qr-studio/internal/bulk"
	"github.com/ebelikov/go-qr-studio/internal/media"
	"github.com/ebelikov/go-qr-studio/internal/render"
	"github.com/ebelikov/go-qr-studio/internal/service"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrProtectedQRExpired:    http.StatusGone,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	validators.ErrUnsupportedType:   http.StatusUnprocessableEntity,
	validators.ErrNoContent:         http.StatusUnprocessableEntity,
	validators.ErrPlaceholderURL:    http.StatusUnprocessableEntity,
	validators.ErrMissingSSID:       http.StatusUnprocessableEntity,
	validators.ErrMissingPassword:   http.StatusUnprocessableEntity,
	validators.ErrMissingName:       http.StatusUnprocessableEntity,
	validators.ErrMissingTitle:      http.StatusUnprocessableEntity,
	validators.ErrMissingStart:      http.StatusUnprocessableEntity,
	validators.ErrMissingLatLon:     http.StatusUnprocessableEntity,
	validators.ErrMissingAddress:    http.StatusUnprocessableEntity,
	validators.ErrMissingNumber:     http.StatusUnprocessableEntity,
	validators.ErrMissingEmail:      http.StatusUnprocessableEntity,

	render.ErrInvalidSize:  http.StatusBadRequest,
	render.ErrInvalidColor: http.StatusBadRequest,

	bulk.ErrEmptyFile:       http.StatusBadRequest,
	bulk.ErrNoContentColumn: http.StatusBadRequest,

	media.ErrEmptyPath:       http.StatusBadRequest,
	media.ErrInvalidPath:     http.StatusBadRequest,
	media.ErrBucketMismatch:  http.StatusBadRequest,
	media.ErrNotLocalBackend: http.StatusNotFound,

	store.ErrDuplicateID:         http.StatusConflict,
	store.ErrProtectedQRNotFound: http.StatusNotFound,
	store.ErrNothingSaved:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
