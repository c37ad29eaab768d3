package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/utils"
	"github.com/ebelikov/go-qr-studio/models"
)

// LocalSigner serves media from a local directory. Signed URLs carry an
// HMAC-SHA256 capability token naming the object path; the token is the only
// credential required to fetch the object.
type LocalSigner struct {
	root    string
	baseURL string
	signKey string
	ttl     time.Duration
	log     *logger.Logger
}

// NewLocalSigner returns a [Signer] backed by HMAC-signed local URLs.
// publicBaseURL is the externally reachable address of this service.
func NewLocalSigner(cfg config.Media, publicBaseURL, signKey string, ttl time.Duration, log *logger.Logger) *LocalSigner {
	return &LocalSigner{
		root:    cfg.LocalDir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		signKey: signKey,
		ttl:     ttl,
		log:     log,
	}
}

func (s *LocalSigner) Sign(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error) {
	if req.Path == "" {
		return nil, ErrEmptyPath
	}
	if _, err := s.resolve(req.Path); err != nil {
		return nil, err
	}

	token, err := utils.GenerateMediaToken(req.Path, s.ttl, s.signKey)
	if err != nil {
		return nil, fmt.Errorf("error generating media token: %w", err)
	}

	return &models.SignedURLResponse{
		URL:       s.baseURL + "/media/" + token,
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

// Open validates the capability token and opens the media object it names.
// The caller owns the returned file and must close it.
func (s *LocalSigner) Open(token string) (*os.File, error) {
	objectPath, err := utils.ValidateMediaToken(token, s.signKey)
	if err != nil {
		return nil, fmt.Errorf("error validating media token: %w", err)
	}

	full, err := s.resolve(objectPath)
	if err != nil {
		return nil, err
	}

	return os.Open(full)
}

// resolve joins the object path onto the media root and rejects paths that
// escape it.
func (s *LocalSigner) resolve(objectPath string) (string, error) {
	cleaned := path.Clean("/" + objectPath)
	if cleaned == "/" {
		return "", ErrInvalidPath
	}

	full := filepath.Join(s.root, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}

	return full, nil
}
