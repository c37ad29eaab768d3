package http

import (
	"net/http"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/utils"
)

// maxBulkBodySize caps uploaded CSV files at 5 MiB.
const maxBulkBodySize = 5 << 20

func (h *Handler) bulkCSV(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body := http.MaxBytesReader(w, r.Body, maxBulkBodySize)

	resp, err := h.services.BulkService.GenerateFromCSV(r.Context(), body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.bulkCSV").Msg("error generating bulk payloads")
		http.Error(w, "error generating bulk payloads", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
