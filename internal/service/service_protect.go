package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/internal/utils"
	"github.com/ebelikov/go-qr-studio/models"
)

// passwordHashCost is the bcrypt work factor applied to protection passwords.
const passwordHashCost = 12

// protectService is the concrete implementation of ProtectService.
// It owns the bcrypt hashing of protection passwords and the construction of
// reveal URLs. The payload handed to scanners contains only the opaque record
// ID; neither the password, its hash, nor the protected content appear in it.
type protectService struct {
	// repository is the data-access layer for protected QR records.
	repository store.ProtectedQRRepository

	// uuidGen produces opaque identifiers for new records.
	uuidGen *utils.UUIDGenerator

	// publicBaseURL is the externally reachable address reveal URLs are
	// built from.
	publicBaseURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewProtectService constructs a ProtectService wired to the given repository
// and populated with the public base URL from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewProtectService(repository store.ProtectedQRRepository, cfg config.App, logger *logger.Logger) ProtectService {
	return &protectService{
		repository:    repository,
		uuidGen:       utils.NewUUIDGenerator(),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}
}

// Create registers a new password-protected QR code.
//
// The password is hashed with bcrypt before persistence. Returns the opaque
// record ID and the reveal URL that becomes the QR payload, or:
//   - ErrInvalidDataProvided if the password or content URL is empty.
//   - A wrapped storage error if the repository call fails.
func (p *protectService) Create(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error) {
	log := logger.FromContext(ctx)

	if req.Password == "" || req.ContentURL == "" {
		log.Error().Str("qrType", string(req.QRType)).Msg("invalid protect request provided")
		return nil, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	record := models.ProtectedQR{
		ID:           p.uuidGen.Generate(),
		ContentURL:   req.ContentURL,
		QRType:       req.QRType,
		PasswordHash: string(hash),
	}
	if req.ExpiresIn > 0 {
		expiresAt := time.Now().Add(time.Duration(req.ExpiresIn) * time.Second).UTC()
		record.ExpiresAt = &expiresAt
	}

	created, err := p.repository.Create(ctx, record)
	if err != nil {
		log.Err(err).Str("id", record.ID).Msg("protected qr creation ended with error")
		return nil, fmt.Errorf("protected qr creation ended with error: %w", err)
	}

	return &models.CreateProtectedResponse{
		QRID:      created.ID,
		URL:       p.revealURL(created.ID),
		ExpiresAt: created.ExpiresAt,
	}, nil
}

// Verify checks a password attempt against a stored record.
//
// The outcome is reported in the response body rather than as an error so
// callers can relay it to scanners verbatim. Only lookup failures and expired
// records surface as errors:
//   - ErrInvalidDataProvided if the ID or password is empty.
//   - store.ErrProtectedQRNotFound (wrapped) for unknown IDs.
//   - ErrProtectedQRExpired for records past their expiry.
func (p *protectService) Verify(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error) {
	log := logger.FromContext(ctx)

	if req.ID == "" || req.Password == "" {
		log.Error().Str("id", req.ID).Msg("invalid verify request provided")
		return nil, ErrInvalidDataProvided
	}

	record, err := p.repository.Get(ctx, req.ID)
	if err != nil {
		log.Err(err).Str("id", req.ID).Msg("protected qr lookup failed")
		return nil, fmt.Errorf("protected qr lookup failed: %w", err)
	}

	if record.Expired(time.Now()) {
		log.Error().Str("id", record.ID).Time("expiresAt", *record.ExpiresAt).Msg("protected qr code is expired")
		return nil, ErrProtectedQRExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return &models.VerifyPasswordResponse{
				Success: false,
				Error:   ErrWrongPassword.Error(),
			}, nil
		}
		return nil, fmt.Errorf("password comparison failed: %w", err)
	}

	return &models.VerifyPasswordResponse{
		Success: true,
		URL:     record.ContentURL,
	}, nil
}

func (p *protectService) revealURL(id string) string {
	return p.publicBaseURL + "/reveal/" + id
}
