package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const maxRequestBody = 1 << 20

// CompletionRequest is the body of POST /v1/completions.
type CompletionRequest struct {
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
}

// Handler handles completion requests.
type Handler struct {
	gateway    *domain.GatewayService
	categories domain.CategorySet
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(gateway *domain.GatewayService, registry *domain.RegistryService) *Handler {
	return &Handler{
		gateway:    gateway,
		categories: registry.Categories(),
	}
}

// HandleCompletion runs one completion. Dispatch failures are reported in
// the result body with status 200; only malformed requests get 4xx.
func (h *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CompletionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categories.Parse(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("completion request received",
		observability.String("category", string(category)),
		observability.Int("prompt_length", len(req.Prompt)))

	result := h.gateway.RunCompletion(ctx, req.Prompt, category)
	if result.Error {
		logger.Warn("completion failed", observability.String("reason", string(result.Reason)))
	} else {
		logger.Info("completion succeeded",
			observability.String("model_used", result.ModelUsed),
			observability.Int("sources", len(result.Sources)))
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it.
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusFor maps registry errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDirectEntryNotRemovable), errors.Is(err, domain.ErrDuplicateEntry):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
