package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ramalMr/cocktail-advisor/internal/config"
	"github.com/ramalMr/cocktail-advisor/internal/domain"
	"github.com/ramalMr/cocktail-advisor/internal/observability"
	"go.uber.org/zap"
)

// Handler handles HTTP requests.
type Handler struct {
	advisor        *domain.AdvisorService
	sessions       *SessionStore
	requestTimeout time.Duration
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(advisor *domain.AdvisorService, sessions *SessionStore, cfg *config.ServerConfig) *Handler {
	return &Handler{
		advisor:        advisor,
		sessions:       sessions,
		requestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type preferenceRequest struct {
	UserID              string   `json:"user_id"`
	FavoriteIngredients []string `json:"favorite_ingredients"`
	Allergies           []string `json:"allergies"`
}

// HandleChat processes a chat message and returns the recommendation response.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	ctx := observability.WithUserID(r.Context(), req.UserID)

	// Overall request deadline; the advisor degrades rather than fails when
	// it expires during reply composition.
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	logger := observability.FromContext(ctx)
	logger.Info("chat request received", zap.Int("message_length", len(req.Message)))

	pref, err := h.advisor.GetPreferences(ctx, req.UserID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	session := h.sessions.Get(req.UserID)
	response, session, err := h.advisor.Recommend(ctx, session, req.Message, pref)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.sessions.Put(req.UserID, session)

	h.writeJSON(ctx, w, response)
}

// HandlePreferences serves preference reads and updates.
func (h *Handler) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getPreferences(w, r)
	case http.MethodPost:
		h.updatePreferences(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	ctx := observability.WithUserID(r.Context(), userID)

	pref, err := h.advisor.GetPreferences(ctx, userID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, pref)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	// Preference payloads are a closed struct; unknown keys are rejected at
	// the boundary rather than silently accepted.
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req preferenceRequest
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := observability.WithUserID(r.Context(), req.UserID)

	pref, err := h.advisor.UpdatePreferences(ctx, req.UserID, req.FavoriteIngredients, req.Allergies)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	h.writeJSON(ctx, w, pref)
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// writeError maps domain errors to HTTP responses, distinguishing "rephrase
// your request" validation failures from "try again" transient failures.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	switch {
	case errors.Is(err, domain.ErrValidation):
		logger.Info("request rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrProviderUnavailable):
		logger.Error("provider unavailable", zap.Error(err))
		http.Error(w, "the advisor is temporarily unavailable, please try again", http.StatusServiceUnavailable)
	default:
		logger.Error("request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
