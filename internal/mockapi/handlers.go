package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/go-chi/chi/v5"
)

// Handler serves a fixed dataset. Writes are answered as if they succeeded
// but nothing is stored.
type Handler struct {
	users    []models.User
	perPage  int
	secret   []byte
	tokenTTL time.Duration
	logger   logging.Logger
	nextID   atomic.Int64
	now      func() time.Time
}

func NewHandler(opts Options) *Handler {
	opts.setDefaults()
	h := &Handler{
		users:    SeedUsers(),
		perPage:  opts.PerPage,
		secret:   []byte(opts.Secret),
		tokenTTL: opts.TokenTTL,
		logger:   opts.Logger,
		now:      time.Now,
	}
	h.nextID.Store(int64(len(h.users)))
	return h
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing email or username")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = strings.TrimSpace(req.Username)
	}
	switch {
	case email == "":
		writeError(w, http.StatusBadRequest, "Missing email or username")
		return
	case req.Password == "":
		writeError(w, http.StatusBadRequest, "Missing password")
		return
	case !h.known(email):
		writeError(w, http.StatusBadRequest, "user not found")
		return
	}

	token, err := IssueToken(email, h.secret, h.tokenTTL)
	if err != nil {
		h.logger.Error(r.Context(), "issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) known(email string) bool {
	for _, u := range h.users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func positiveQueryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page := positiveQueryInt(r, "page", 1)
	perPage := positiveQueryInt(r, "per_page", h.perPage)
	writeJSON(w, http.StatusOK, pageOf(h.users, page, perPage))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	for _, u := range h.users {
		if u.ID == id {
			writeJSON(w, http.StatusOK, map[string]any{"data": u})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{})
}

func decodeObject(r *http.Request) (map[string]any, bool) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, false
	}
	return body, true
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	body["id"] = strconv.FormatInt(h.nextID.Add(1), 10)
	body["createdAt"] = h.now().UTC().Format(time.RFC3339Nano)
	writeJSON(w, http.StatusCreated, body)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	body["updatedAt"] = h.now().UTC().Format(time.RFC3339Nano)
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
