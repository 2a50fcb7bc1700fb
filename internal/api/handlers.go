// Package api exposes HTTP handlers for the activities directory.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"example.com/activities/internal/domain"
)

// Handler coordinates HTTP requests with the activity directory.
type Handler struct {
	directory domain.Directory
}

// NewHandler builds a Handler around the given directory.
func NewHandler(directory domain.Directory) *Handler {
	return &Handler{directory: directory}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", redirectToIndex)
	r.Get("/healthz", healthz)
	r.Get("/activities", h.listActivities)
	r.Post("/activities/{name}/signup", h.signup)
	r.Delete("/activities/{name}/unregister", h.unregister)
}

// redirectToIndex sends browsers hitting the bare host to the static frontend.
func redirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	snapshot := h.directory.Snapshot(r.Context())

	resp := make(map[string]ActivityView, len(snapshot))
	for name, activity := range snapshot {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := rosterParams(w, r)
	if !ok {
		return
	}

	activity, err := h.directory.Enroll(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			writeError(w, http.StatusBadRequest, "conflict", fmt.Sprintf("%s is already signed up for this activity", email))
		case errors.Is(err, domain.ErrActivityFull):
			writeError(w, http.StatusBadRequest, "conflict", fmt.Sprintf("%s is full", name))
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity.Name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := rosterParams(w, r)
	if !ok {
		return
	}

	activity, err := h.directory.Withdraw(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrStudentNotFound):
			writeError(w, http.StatusBadRequest, "conflict", "Student not found in this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity.Name),
	})
}

// rosterParams extracts and validates the activity name and student email for
// the mutating endpoints. Activity names travel percent-encoded in the path
// segment and are decoded before lookup.
func rosterParams(w http.ResponseWriter, r *http.Request) (name, email string, ok bool) {
	name = chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	email = r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		writeError(w, http.StatusBadRequest, "validation_failed", "a valid email query parameter is required")
		return "", "", false
	}
	return name, email, true
}

// ActivityView is the wire shape of one activity in GET /activities.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the confirmation body for successful roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := make([]string, 0, len(activity.Participants))
	participants = append(participants, activity.Participants...)
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
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
