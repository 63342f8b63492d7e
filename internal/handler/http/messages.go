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

// insertMessage stores one encrypted message and returns the row with the
// server-assigned sequence number. Redelivery of an already stored message ID
// answers 409 with the original row in the body so the sender can converge
// on the first insert.
func (h *Handler) insertMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, msg); err != nil {
		log.Err(err).Str("message_id", msg.ID).Msg("message failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// the authenticated user is the only allowed author
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}
	if msg.SenderID != userID {
		log.Error().Str("sender_id", msg.SenderID).Str("user_id", userID).Msg("sender does not match token subject")
		http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
		return
	}

	saved, err := h.services.MessageService.Insert(ctx, msg)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateMessage):
			// idempotent redelivery, answer with the stored row
			utils.WriteJSON(w, saved, http.StatusConflict)
			return
		case errors.Is(err, store.ErrConversationNotFound):
			log.Err(err).Str("conversation_id", msg.ConversationID).Msg("conversation not found")
			http.Error(w, app.MsgConversationNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrEmptyMessageContent):
			log.Err(err).Msg("invalid message provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("message_id", msg.ID).Msg("unexpected error during message insert")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messageID := chi.URLParam(r, "id")

	msg, err := h.services.MessageService.GetByID(ctx, messageID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrMessageNotFound):
			log.Err(err).Str("message_id", messageID).Msg("message not found")
			http.Error(w, app.MsgMessageNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("message_id", messageID).Msg("unexpected error during message lookup")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) ensureConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var conversation models.Conversation
	if err := json.NewDecoder(r.Body).Decode(&conversation); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, conversation); err != nil {
		log.Err(err).Msg("conversation failed validation")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.MessageService.EnsureConversation(ctx, conversation); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("conversation_id", conversation.ID).Msg("unexpected error during conversation creation")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) nextSequenceNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversationID := chi.URLParam(r, "id")

	next, err := h.services.MessageService.NextSequenceNumber(ctx, conversationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrConversationNotFound):
			log.Err(err).Str("conversation_id", conversationID).Msg("conversation not found")
			http.Error(w, app.MsgConversationNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("conversation_id", conversationID).Msg("unexpected error during next sequence lookup")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.NextSequenceResponse{SequenceNumber: next}, http.StatusOK)
}

func (h *Handler) updateLastMessageAt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversationID := chi.URLParam(r, "id")

	var req models.LastMessageAtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.MessageService.UpdateLastMessageAt(ctx, conversationID, req.LastMessageAt); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrConversationNotFound):
			log.Err(err).Str("conversation_id", conversationID).Msg("conversation not found")
			http.Error(w, app.MsgConversationNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("conversation_id", conversationID).Msg("unexpected error during timestamp update")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
