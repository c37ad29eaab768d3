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
	"github.com/ebelikov/go-qr-studio/internal/validators"
	"github.com/ebelikov/go-qr-studio/models"
)

func TestEncodePayload_Success(t *testing.T) {
	h := newTestHandler(t)

	body := models.QRContent{Type: models.TypeURL, Raw: "https://example.com"}
	req := httptest.NewRequest(http.MethodPost, "/api/payload/encode", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.encodePayload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EncodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://example.com", resp.Payload)
	assert.True(t, resp.Renderable)
}

func TestEncodePayload_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/payload/encode", strings.NewReader(`{bad json}`))
	rec := httptest.NewRecorder()

	h.encodePayload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncodePayload_ServiceError(t *testing.T) {
	h := newTestHandler(t)
	h.services.EncodeService = &mockEncodeSvc{
		encodeFn: func(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error) {
			return nil, service.ErrInvalidDataProvided
		},
	}

	body := models.QRContent{Type: models.TypeURL}
	req := httptest.NewRequest(http.MethodPost, "/api/payload/encode", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.encodePayload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderQR_Success(t *testing.T) {
	h := newTestHandler(t)

	body := models.RenderRequest{
		Content: models.QRContent{Type: models.TypeURL, Raw: "https://example.com"},
		Options: models.RenderOptions{Size: 256},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/qr/render", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.renderQR(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://example.com", resp.Payload)
	assert.NotEmpty(t, resp.DataURL)
}

func TestRenderQR_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/qr/render", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	h.renderQR(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderQR_ValidationError(t *testing.T) {
	h := newTestHandler(t)
	h.services.EncodeService = &mockEncodeSvc{
		renderFn: func(ctx context.Context, req models.RenderRequest) (*models.RenderResponse, error) {
			return nil, validators.ErrMissingSSID
		},
	}

	body := models.RenderRequest{Content: models.QRContent{Type: models.TypeWifi}}
	req := httptest.NewRequest(http.MethodPost, "/api/qr/render", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.renderQR(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
