package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-keeper/internal/app"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/go-chi/chi/v5"
)

// upsertKeyRecord publishes the caller's public key record. A user may only
// ever write their own record; the owner is taken from the bearer token.
func (h *Handler) upsertKeyRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var record models.KeyRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, record); err != nil {
		log.Err(err).Str("user_id", record.UserID).Msg("key record failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}
	if record.UserID != userID {
		log.Error().Str("record_user_id", record.UserID).Str("user_id", userID).Msg("key record owner does not match token subject")
		http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
		return
	}

	saved, err := h.services.KeyService.Upsert(ctx, record)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("user_id", record.UserID).Msg("unexpected error during key record upsert")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// getKeyRecord serves the public key record of any user. Reading other
// users' public keys is required to encrypt messages for them.
func (h *Handler) getKeyRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userID")

	record, err := h.services.KeyService.Get(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrKeysNotFound):
			log.Err(err).Str("user_id", userID).Msg("key record not found")
			http.Error(w, app.MsgKeysNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("user_id", userID).Msg("unexpected error during key record lookup")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
