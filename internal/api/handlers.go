// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service   *domain.Service
	staticDir string
}

// NewHandler builds a Handler serving static assets from staticDir.
func NewHandler(service *domain.Service, staticDir string) *Handler {
	return &Handler{service: service, staticDir: staticDir}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects to the bundled signup page. The catch-all pattern also
// receives every otherwise unmatched path, which gets a 404.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "page not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listActivities(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name, action, found := strings.Cut(rest, "/")
	if !found || name == "" {
		writeError(w, http.StatusNotFound, "not_found", "page not found")
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	req := RosterRequest{Activity: name, Email: r.URL.Query().Get("email")}
	if err := req.Validate(); err != nil {
		observability.RecordRejection("validation_failed")
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	switch action {
	case "signup":
		h.signup(w, r, req)
	case "unregister":
		h.unregister(w, r, req)
	default:
		writeError(w, http.StatusNotFound, "not_found", "page not found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, req RosterRequest) {
	if err := h.service.Signup(r.Context(), req.Activity, req.Email); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.Activity),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, req RosterRequest) {
	if err := h.service.Unregister(r.Context(), req.Activity, req.Email); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.Activity),
	})
}

// RosterRequest carries the parameters for a roster mutation.
type RosterRequest struct {
	Activity string
	Email    string
}

// Validate normalises and checks the request fields.
func (r *RosterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return errors.New("email query parameter is required")
	}
	return nil
}

// MessageResponse is the confirmation body for roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordRejection("activity_not_found")
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		observability.RecordRejection("already_signed_up")
		writeError(w, http.StatusBadRequest, "invalid_request", "Student is already signed up for this activity")
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordRejection("not_registered")
		writeError(w, http.StatusBadRequest, "invalid_request", "Student is not registered for this activity")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
