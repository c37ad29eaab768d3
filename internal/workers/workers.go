package workers

import (
	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker enabled by the configuration.
// Workers whose interval is zero are not created.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.CleanupInterval > 0 {
		workers.workers = append(workers.workers,
			newCleanupWorker(storages.ProtectedQR, cfg.CleanupInterval, logger))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
