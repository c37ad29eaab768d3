package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebelikov/go-qr-studio/internal/service"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/models"
)

func TestCreateProtected_Success(t *testing.T) {
	h := newTestHandler(t)

	body := models.CreateProtectedRequest{
		Password:   "s3cret",
		ContentURL: "https://example.com/menu",
		QRType:     models.TypeURL,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/protect", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createProtected(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.CreateProtectedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "qr-1", resp.QRID)
	assert.NotEmpty(t, resp.URL)
}

func TestCreateProtected_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/protect", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.createProtected(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProtected_MissingPassword(t *testing.T) {
	h := newTestHandler(t)
	h.services.ProtectService = &mockProtectSvc{
		createFn: func(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error) {
			return nil, service.ErrInvalidDataProvided
		},
	}

	body := models.CreateProtectedRequest{ContentURL: "https://example.com"}
	req := httptest.NewRequest(http.MethodPost, "/api/protect", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createProtected(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProtected_DuplicateID(t *testing.T) {
	h := newTestHandler(t)
	h.services.ProtectService = &mockProtectSvc{
		createFn: func(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error) {
			return nil, store.ErrDuplicateID
		},
	}

	body := models.CreateProtectedRequest{Password: "s3cret", ContentURL: "https://example.com"}
	req := httptest.NewRequest(http.MethodPost, "/api/protect", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createProtected(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestVerifyProtected_Success(t *testing.T) {
	h := newTestHandler(t)

	body := models.VerifyPasswordRequest{ID: "qr-1", Password: "s3cret"}
	req := httptest.NewRequest(http.MethodPost, "/api/protect/verify", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.verifyProtected(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VerifyPasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://example.com", resp.URL)
}

func TestVerifyProtected_WrongPasswordIsStillOK(t *testing.T) {
	h := newTestHandler(t)
	h.services.ProtectService = &mockProtectSvc{
		verifyFn: func(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error) {
			return &models.VerifyPasswordResponse{Success: false, Error: "wrong password"}, nil
		},
	}

	body := models.VerifyPasswordRequest{ID: "qr-1", Password: "nope"}
	req := httptest.NewRequest(http.MethodPost, "/api/protect/verify", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.verifyProtected(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VerifyPasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.URL)
}

func TestVerifyProtected_NotFound(t *testing.T) {
	h := newTestHandler(t)
	h.services.ProtectService = &mockProtectSvc{
		verifyFn: func(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error) {
			return nil, store.ErrProtectedQRNotFound
		},
	}

	body := models.VerifyPasswordRequest{ID: "missing", Password: "s3cret"}
	req := httptest.NewRequest(http.MethodPost, "/api/protect/verify", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.verifyProtected(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyProtected_Expired(t *testing.T) {
	h := newTestHandler(t)
	h.services.ProtectService = &mockProtectSvc{
		verifyFn: func(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error) {
			return nil, service.ErrProtectedQRExpired
		},
	}

	body := models.VerifyPasswordRequest{ID: "qr-1", Password: "s3cret"}
	req := httptest.NewRequest(http.MethodPost, "/api/protect/verify", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.verifyProtected(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)
}
