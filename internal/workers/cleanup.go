package workers

import (
	"context"
	"time"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/store"
)

// cleanupTimeout bounds a single purge pass against the database.
const cleanupTimeout = 30 * time.Second

// cleanupWorker periodically purges expired password-protected QR records so
// their reveal URLs stop resolving shortly after the expiry passes.
type cleanupWorker struct {
	repository store.ProtectedQRRepository
	interval   time.Duration
	stop       chan struct{}
	logger     *logger.Logger
}

func newCleanupWorker(repository store.ProtectedQRRepository, interval time.Duration, logger *logger.Logger) *cleanupWorker {
	return &cleanupWorker{
		repository: repository,
		interval:   interval,
		stop:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the purge loop in a background goroutine and returns.
func (w *cleanupWorker) Run() {
	go w.loop()
}

// Stop terminates the purge loop.
func (w *cleanupWorker) Stop() {
	close(w.stop)
}

func (w *cleanupWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.purge()
		case <-w.stop:
			return
		}
	}
}

func (w *cleanupWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	purged, err := w.repository.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		w.logger.Error().Err(err).Str("func", "*cleanupWorker.purge").Msg("error purging expired records")
		return
	}

	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("expired protected QR records purged")
	}
}
