package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebelikov/go-qr-studio/internal/adapter"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/models"
)

// pngDataURLPrefix is the only image encoding the server produces.
const pngDataURLPrefix = "data:image/png;base64,"

type clientQRService struct {
	adapter adapter.ServerAdapter
	history ClientHistoryService
	logger  *logger.Logger
}

func NewClientQRService(serverAdapter adapter.ServerAdapter, history ClientHistoryService, logger *logger.Logger) ClientQRService {
	return &clientQRService{
		adapter: serverAdapter,
		history: history,
		logger:  logger,
	}
}

func (c *clientQRService) Encode(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error) {
	return c.adapter.Encode(ctx, content)
}

func (c *clientQRService) Generate(ctx context.Context, title string, content models.QRContent, opts models.RenderOptions) (*models.RenderResponse, error) {
	rendered, err := c.adapter.Render(ctx, models.RenderRequest{Content: content, Options: opts})
	if err != nil {
		return nil, err
	}

	// history is best effort, a failed write must not lose the image
	if err := c.history.Record(ctx, title, content.Type, rendered.Payload); err != nil {
		c.logger.Warn().Err(err).Msg("failed to record history entry")
	}

	return rendered, nil
}

func (c *clientQRService) Protect(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error) {
	return c.adapter.CreateProtected(ctx, req)
}

func (c *clientQRService) SaveImage(dataURL, dir, name string) (string, error) {
	encoded, ok := strings.CutPrefix(dataURL, pngDataURLPrefix)
	if !ok {
		return "", fmt.Errorf("unexpected image data url format")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode image data: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	if !strings.HasSuffix(name, ".png") {
		name += ".png"
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path, nil
}

func (c *clientQRService) ServerVersion(ctx context.Context) (string, error) {
	return c.adapter.GetServerVersion(ctx)
}
