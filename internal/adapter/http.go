package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/utils"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteStore]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [RemoteStore]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpRemoteStore) Register(ctx context.Context, user models.User) (models.User, error) {
	var createdUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&createdUser).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return createdUser, nil
}

// AuthParams implements [RemoteStore]. It POSTs the email to
// POST /api/auth/params and returns the auth salt stored for that account.
// The salt is required to derive the auth hash before Login.
func (h *httpRemoteStore) AuthParams(ctx context.Context, email string) (models.AuthParamsResponse, error) {
	var params models.AuthParamsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: email}).
		SetResult(&params).
		Post("/api/auth/params")
	if err != nil {
		return models.AuthParamsResponse{}, fmt.Errorf("auth params request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthParamsResponse{}, err
	}

	return params, nil
}

// Login implements [RemoteStore]. It POSTs the pre-computed auth hash to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the
// server-side user record.
func (h *httpRemoteStore) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return user, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return user, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return user, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// InsertMessage implements [RemoteStore]. It POSTs the encrypted message to
// POST /api/messages and decodes the stored row, including the
// server-assigned sequence number. Returns [ErrConflict] (wrapped) together
// with the original row on HTTP 409 so redelivery converges on the first
// insert. Requires a valid bearer token.
func (h *httpRemoteStore) InsertMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/api/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message request: %w", err)
	}

	mappedErr := mapHTTPError(resp)
	if mappedErr != nil && resp.StatusCode() != http.StatusConflict {
		return models.Message{}, mappedErr
	}

	// 2xx and 409 both carry the stored row in the body.
	var saved models.Message
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.Message{}, fmt.Errorf("decode insert message response: %w", err)
	}

	return saved, mappedErr
}

// NextSequenceNumber implements [RemoteStore]. It GETs the advisory next
// sequence number from GET /api/conversations/{id}/next-seq. Requires a valid
// bearer token.
func (h *httpRemoteStore) NextSequenceNumber(ctx context.Context, conversationID string) (int64, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/conversations/" + url.PathEscape(conversationID) + "/next-seq")
	if err != nil {
		return 0, fmt.Errorf("next sequence request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var next models.NextSequenceResponse
	if err = json.Unmarshal(resp.Body(), &next); err != nil {
		return 0, fmt.Errorf("decode next sequence response: %w", err)
	}

	return next.SequenceNumber, nil
}

// UpdateLastMessageAt implements [RemoteStore]. It PUTs the activity
// timestamp to PUT /api/conversations/{id}/last-message-at. Requires a valid
// bearer token.
func (h *httpRemoteStore) UpdateLastMessageAt(ctx context.Context, conversationID string, at time.Time) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LastMessageAtRequest{LastMessageAt: at}).
		Put("/api/conversations/" + url.PathEscape(conversationID) + "/last-message-at")
	if err != nil {
		return fmt.Errorf("update last message at request: %w", err)
	}

	return mapHTTPError(resp)
}

// EnsureConversation implements [RemoteStore]. It POSTs the conversation to
// POST /api/conversations; the server treats an existing ID as success.
// Requires a valid bearer token.
func (h *httpRemoteStore) EnsureConversation(ctx context.Context, conversation models.Conversation) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(conversation).
		Post("/api/conversations")
	if err != nil {
		return fmt.Errorf("ensure conversation request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpsertKeyRecord implements [RemoteStore]. It PUTs the key record to
// PUT /api/keys and decodes the stored row. Requires a valid bearer token.
func (h *httpRemoteStore) UpsertKeyRecord(ctx context.Context, record models.KeyRecord) (models.KeyRecord, error) {
	var saved models.KeyRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&saved).
		Put("/api/keys")
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("upsert key record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyRecord{}, err
	}

	return saved, nil
}

// GetKeyRecord implements [RemoteStore]. It GETs the key record of userID
// from GET /api/keys/{userID}. Returns [ErrNotFound] (wrapped) when the user
// has not published keys. Requires a valid bearer token.
func (h *httpRemoteStore) GetKeyRecord(ctx context.Context, userID string) (models.KeyRecord, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/keys/" + url.PathEscape(userID))
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("get key record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyRecord{}, err
	}

	var record models.KeyRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.KeyRecord{}, fmt.Errorf("decode key record response: %w", err)
	}

	return record, nil
}

// WelcomeSent implements [RemoteStore]. It GETs the welcome flag from
// GET /api/users/{id}/welcome-flag. Requires a valid bearer token.
func (h *httpRemoteStore) WelcomeSent(ctx context.Context, userID string) (bool, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/users/" + url.PathEscape(userID) + "/welcome-flag")
	if err != nil {
		return false, fmt.Errorf("welcome flag request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var flag models.WelcomeFlagResponse
	if err = json.Unmarshal(resp.Body(), &flag); err != nil {
		return false, fmt.Errorf("decode welcome flag response: %w", err)
	}

	return flag.WelcomeSent, nil
}

// MarkWelcomeSent implements [RemoteStore]. It PUTs the welcome flag via
// PUT /api/users/{id}/welcome-flag. Requires a valid bearer token.
func (h *httpRemoteStore) MarkWelcomeSent(ctx context.Context, userID string) error {
	resp, err := h.authedRequest(ctx).
		Put("/api/users/" + url.PathEscape(userID) + "/welcome-flag")
	if err != nil {
		return fmt.Errorf("mark welcome sent request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
