package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/utils"
	"github.com/ebelikov/go-qr-studio/models"
)

func (h *Handler) signMediaURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignedURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.signMediaURL").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.MediaService.SignURL(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signMediaURL").Msg("error signing media url")
		http.Error(w, "error signing media url", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) serveMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")
	if token == "" {
		http.Error(w, "missing media token", http.StatusBadRequest)
		return
	}

	f, err := h.services.MediaService.OpenLocal(r.Context(), token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.serveMedia").Msg("error serving media object")
		http.Error(w, "error serving media object", statusFromError(err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, f); err != nil {
		log.Err(err).Str("func", "*Handler.serveMedia").Msg("error streaming media object")
	}
}
