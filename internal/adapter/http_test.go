package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets http scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://qr.example.com", want: "https://qr.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Encode ──────────────────────────────────────────────────────────────────

func TestEncode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payload/encode", r.URL.Path)

		var content models.QRContent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&content))
		assert.Equal(t, models.TypeWifi, content.Type)

		json.NewEncoder(w).Encode(models.EncodeResponse{
			Payload:    "WIFI:T:WPA;S:Home;P:p;H:false;;",
			Renderable: true,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Encode(context.Background(), models.QRContent{
		Type: models.TypeWifi,
		Wifi: &models.WifiCredentials{SSID: "Home", Password: "p", Security: "WPA"},
	})

	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:p;H:false;;", got.Payload)
	assert.True(t, got.Renderable)
}

func TestEncode_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid JSON was passed"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Encode(context.Background(), models.QRContent{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Render ──────────────────────────────────────────────────────────────────

func TestRender_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/qr/render", r.URL.Path)
		json.NewEncoder(w).Encode(models.RenderResponse{
			Payload: "tel:+15551234567",
			DataURL: "data:image/png;base64,iVBOR",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Render(context.Background(), models.RenderRequest{
		Content: models.QRContent{Type: models.TypePhone, Raw: "+15551234567"},
		Options: models.RenderOptions{Size: 256},
	})

	require.NoError(t, err)
	assert.Equal(t, "tel:+15551234567", got.Payload)
	assert.True(t, strings.HasPrefix(got.DataURL, "data:image/png;base64,"))
}

func TestRender_Unprocessable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("ssid is required"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Render(context.Background(), models.RenderRequest{})

	assert.ErrorIs(t, err, ErrUnprocessable)
}

// ── CreateProtected ─────────────────────────────────────────────────────────

func TestCreateProtected_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/protect", r.URL.Path)

		var req models.CreateProtectedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "s3cret", req.Password)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.CreateProtectedResponse{
			QRID: "qr-1",
			URL:  "https://qr.example.com/reveal/qr-1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateProtected(context.Background(), models.CreateProtectedRequest{
		Password:   "s3cret",
		ContentURL: "https://example.com/menu",
	})

	require.NoError(t, err)
	assert.Equal(t, "qr-1", got.QRID)
	assert.Equal(t, "https://qr.example.com/reveal/qr-1", got.URL)
}

// ── VerifyPassword ──────────────────────────────────────────────────────────

func TestVerifyPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/protect/verify", r.URL.Path)
		json.NewEncoder(w).Encode(models.VerifyPasswordResponse{Success: true, URL: "https://example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.VerifyPassword(context.Background(), models.VerifyPasswordRequest{ID: "qr-1", Password: "s3cret"})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "https://example.com", got.URL)
}

func TestVerifyPassword_WrongPasswordIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.VerifyPasswordResponse{Success: false, Error: "wrong password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.VerifyPassword(context.Background(), models.VerifyPasswordRequest{ID: "qr-1", Password: "nope"})

	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, "wrong password", got.Error)
}

func TestVerifyPassword_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.VerifyPassword(context.Background(), models.VerifyPasswordRequest{ID: "missing", Password: "x"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyPassword_RetriesOnce(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// kill the connection so the client sees a transport error
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(models.VerifyPasswordResponse{Success: true, URL: "https://example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.VerifyPassword(context.Background(), models.VerifyPasswordRequest{ID: "qr-1", Password: "s3cret"})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 2, calls)
}

// ── SignMediaURL ────────────────────────────────────────────────────────────

func TestSignMediaURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/media/sign", r.URL.Path)
		json.NewEncoder(w).Encode(models.SignedURLResponse{URL: "https://signed.example.com/x", ExpiresIn: 900})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignMediaURL(context.Background(), models.SignedURLRequest{Path: "logos/acme.png"})

	require.NoError(t, err)
	assert.Equal(t, int64(900), got.ExpiresIn)
}

// ── BulkCSV ─────────────────────────────────────────────────────────────────

func TestBulkCSV_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bulk/csv", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "title,url")

		json.NewEncoder(w).Encode(models.BulkResponse{
			Items: []models.BulkItem{{Line: 1, Payload: "https://example.com"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.BulkCSV(context.Background(), strings.NewReader("title,url\nSite,https://example.com\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Items, 1)
}

// ── GetServerVersion ────────────────────────────────────────────────────────

func TestGetServerVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

func TestGetServerVersion_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetServerVersion(context.Background())

	assert.Error(t, err)
}
