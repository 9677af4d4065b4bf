package accountapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"accountd/cmd/account"
)

// Handler wires the account HTTP endpoints to the account service.
type Handler struct {
	log *slog.Logger
	cfg Config

	svc    *account.Service
	secret []byte
}

// NewHandler constructs the account API handler. secret is the token signing
// key used by the request guard; its presence is validated at startup.
func NewHandler(log *slog.Logger, cfg Config, svc *account.Service, secret []byte) (*Handler, error) {
	if log == nil {
		log = slog.Default()
	}
	if svc == nil {
		return nil, errors.New("accountapi: nil service")
	}
	if len(secret) == 0 {
		return nil, errors.New("accountapi: empty token secret")
	}
	return &Handler{log: log, cfg: cfg, svc: svc, secret: secret}, nil
}

// Register wires account routes onto the provided mux. Paths match the
// original service surface; update is token-guarded.
func (h *Handler) Register(mux *http.ServeMux) {
	if h == nil || mux == nil {
		return
	}
	mux.HandleFunc("/users/list", h.handleList)
	mux.HandleFunc("/users/insert", h.handleInsert)
	mux.Handle("/users/update/", h.RequireToken(http.HandlerFunc(h.handleUpdate)))
	mux.HandleFunc("/users/login", h.handleLogin)
}

// ---- handlers ----

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	users, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("account.list.fail", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, listResponse{Users: out})
}

func (h *Handler) handleInsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req insertRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	u, err := h.svc.Create(r.Context(), account.CreateAccountInput{
		Username:    strings.TrimSpace(req.Username),
		Email:       strings.TrimSpace(req.Email),
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		h.writeServiceError(w, r, "account.insert", err)
		return
	}

	h.auditAccountCreated(r, u.ID, u.Username)
	writeJSON(w, http.StatusCreated, insertResponse{User: toUserResponse(u)})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, ok := updateID(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "numeric user id required")
		return
	}

	var req updateRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	u, err := h.svc.Update(r.Context(), id, account.UpdateAccountInput{
		Username:    trimPtr(req.Username),
		Email:       trimPtr(req.Email),
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		h.writeServiceError(w, r, "account.update", err)
		return
	}

	h.auditAccountUpdated(r, u.ID)
	writeJSON(w, http.StatusOK, updateResponse{User: toUserResponse(u)})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	res, err := h.svc.Login(r.Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			// One response for unknown user and wrong password.
			h.auditLoginFailed(r, username)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		h.log.Error("account.login.fail", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	h.auditLoginSuccess(r, res.User.ID, res.User.Username)
	writeJSON(w, http.StatusOK, loginResponse{
		Token: res.Token,
		User:  toUserResponse(res.User),
	})
}

// writeServiceError maps service error kinds onto status codes. Internal
// detail stays in the log; the client sees a generic message.
func (h *Handler) writeServiceError(w http.ResponseWriter, _ *http.Request, op string, err error) {
	var conflict account.ConflictError
	switch {
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, "conflict", conflict.Field+" already in use")
	case account.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", "user not found")
	case errors.Is(err, account.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.Error(op+".fail", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "internal error")
	}
}

func updateID(path string) (int64, bool) {
	raw := strings.TrimPrefix(path, "/users/update/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}
