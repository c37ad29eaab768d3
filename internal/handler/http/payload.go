package http

import (
	"encoding/json"
	"net/http"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/utils"
	"github.com/ebelikov/go-qr-studio/models"
)

func (h *Handler) encodePayload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var content models.QRContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		log.Err(err).Str("func", "*Handler.encodePayload").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EncodeService.Encode(r.Context(), content)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encodePayload").Msg("error encoding payload")
		http.Error(w, "error encoding payload", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) renderQR(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.renderQR").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.EncodeService.Render(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderQR").Msg("error rendering qr code")
		http.Error(w, "error rendering qr code", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
