package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/utils"
	"github.com/ebelikov/go-qr-studio/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Encode implements [ServerAdapter]. It POSTs the content to
// POST /api/payload/encode and decodes the payload verdict.
func (h *httpServerAdapter) Encode(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(content).
		Post("/api/payload/encode")
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var encoded models.EncodeResponse
	if err = json.Unmarshal(resp.Body(), &encoded); err != nil {
		return nil, fmt.Errorf("decode encode response: %w", err)
	}

	return &encoded, nil
}

// Render implements [ServerAdapter]. It POSTs the render request to
// POST /api/qr/render and returns the payload plus image data URL.
func (h *httpServerAdapter) Render(ctx context.Context, req models.RenderRequest) (*models.RenderResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/qr/render")
	if err != nil {
		return nil, fmt.Errorf("render request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rendered models.RenderResponse
	if err = json.Unmarshal(resp.Body(), &rendered); err != nil {
		return nil, fmt.Errorf("decode render response: %w", err)
	}

	return &rendered, nil
}

// CreateProtected implements [ServerAdapter].
func (h *httpServerAdapter) CreateProtected(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/protect")
	if err != nil {
		return nil, fmt.Errorf("create protected request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var created models.CreateProtectedResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("decode create protected response: %w", err)
	}

	return &created, nil
}

// VerifyPassword implements [ServerAdapter]. A failed network round trip is
// retried once before giving up; non-2xx statuses are never retried.
func (h *httpServerAdapter) VerifyPassword(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error) {
	var resp *resty.Response
	var err error

	for attempt := 0; attempt < 2; attempt++ {
		resp, err = h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/protect/verify")
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			break
		}
		h.logger.Warn().Err(err).Msg("verify password request failed, retrying")
	}
	if err != nil {
		return nil, fmt.Errorf("verify password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var verdict models.VerifyPasswordResponse
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return nil, fmt.Errorf("decode verify password response: %w", err)
	}

	return &verdict, nil
}

// SignMediaURL implements [ServerAdapter].
func (h *httpServerAdapter) SignMediaURL(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/media/sign")
	if err != nil {
		return nil, fmt.Errorf("sign media url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var signed models.SignedURLResponse
	if err = json.Unmarshal(resp.Body(), &signed); err != nil {
		return nil, fmt.Errorf("decode sign media url response: %w", err)
	}

	return &signed, nil
}

// BulkCSV implements [ServerAdapter]. The CSV content is streamed as the raw
// request body.
func (h *httpServerAdapter) BulkCSV(ctx context.Context, csv io.Reader) (*models.BulkResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/csv").
		SetBody(csv).
		Post("/api/bulk/csv")
	if err != nil {
		return nil, fmt.Errorf("bulk csv request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var outcome models.BulkResponse
	if err = json.Unmarshal(resp.Body(), &outcome); err != nil {
		return nil, fmt.Errorf("decode bulk csv response: %w", err)
	}

	return &outcome, nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
