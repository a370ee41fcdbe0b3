package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const defaultListLimit = 100

// AttemptHistory exposes recent attempt telemetry.
type AttemptHistory interface {
	Recent(limit int) []domain.Attempt
}

// ModelView is an entry as shown to operators: the credential is reduced to a hint.
type ModelView struct {
	domain.ModelEntry

	CredentialHint string `json:"credential_hint,omitempty"`
	Placeholder    bool   `json:"placeholder_credential"`
}

// ModelsResponse is the body of GET /admin/models.
type ModelsResponse struct {
	Direct     []ModelView          `json:"direct"`
	Aggregated []ModelView          `json:"aggregated"`
	Stats      domain.RegistryStats `json:"stats"`
}

type enabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type credentialRequest struct {
	Credential string `json:"credential"`
}

// AdminHandler serves the operator API over the model registry.
type AdminHandler struct {
	registry *domain.RegistryService
	attempts AttemptHistory
}

// NewAdminHandler creates a new admin handler (DI constructor).
func NewAdminHandler(registry *domain.RegistryService, attempts AttemptHistory) *AdminHandler {
	return &AdminHandler{
		registry: registry,
		attempts: attempts,
	}
}

// Register mounts the admin routes on mux.
func (h *AdminHandler) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, wrap(fn))
	}

	route("GET /admin/models", h.HandleListModels)
	route("POST /admin/models", h.HandleAddModel)
	route("PUT /admin/models/{id}/enabled", h.HandleSetEnabled)
	route("PUT /admin/models/{id}/credential", h.HandleSetCredential)
	route("DELETE /admin/models/{id}", h.HandleRemoveModel)
	route("GET /admin/attempts", h.HandleAttempts)
	route("GET /admin/audit", h.HandleAudit)
}

// HandleListModels returns both collections and the dashboard counters.
func (h *AdminHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.registry.Snapshot(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	stats, err := h.registry.Stats(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ModelsResponse{
		Direct:     views(snapshot.Direct),
		Aggregated: views(snapshot.Aggregated),
		Stats:      stats,
	})
}

// HandleAddModel creates an aggregated entry.
func (h *AdminHandler) HandleAddModel(w http.ResponseWriter, r *http.Request) {
	var req domain.AggregatedRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.registry.AddAggregated(r.Context(), adminActor(r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view(entry))
}

// HandleSetEnabled toggles an entry.
func (h *AdminHandler) HandleSetEnabled(w http.ResponseWriter, r *http.Request) {
	var req enabledRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil || req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"enabled\": bool}")
		return
	}

	entry, err := h.registry.SetEnabled(r.Context(), adminActor(r), r.PathValue("id"), *req.Enabled)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view(entry))
}

// HandleSetCredential rotates an entry's key.
func (h *AdminHandler) HandleSetCredential(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.registry.SetCredential(r.Context(), adminActor(r), r.PathValue("id"), req.Credential)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view(entry))
}

// HandleRemoveModel deletes an aggregated entry.
func (h *AdminHandler) HandleRemoveModel(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.RemoveAggregated(r.Context(), adminActor(r), r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAttempts returns recent attempt telemetry, newest first.
func (h *AdminHandler) HandleAttempts(w http.ResponseWriter, r *http.Request) {
	attempts := []domain.Attempt{}
	if h.attempts != nil {
		attempts = h.attempts.Recent(limitParam(r))
	}

	writeJSON(w, http.StatusOK, map[string]any{"attempts": attempts})
}

// HandleAudit returns the registry audit trail, newest first.
func (h *AdminHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	events, err := h.registry.Audit(r.Context(), limitParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if events == nil {
		events = []domain.AuditEvent{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		observability.FromContext(r.Context()).Error("admin request failed", observability.Error(err))
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	return limit
}

func view(entry domain.ModelEntry) ModelView {
	return ModelView{
		ModelEntry:     entry,
		CredentialHint: domain.CredentialHint(entry.Credential),
		Placeholder:    domain.IsPlaceholderCredential(entry.Credential),
	}
}

func views(entries []domain.ModelEntry) []ModelView {
	out := make([]ModelView, 0, len(entries))
	for _, entry := range entries {
		out = append(out, view(entry))
	}
	return out
}

// adminActor names the operator for the audit trail.
func adminActor(r *http.Request) string {
	if actor := strings.TrimSpace(r.Header.Get("X-Admin-Actor")); actor != "" {
		return actor
	}
	return "admin"
}
