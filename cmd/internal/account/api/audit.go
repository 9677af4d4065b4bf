package accountapi

import "net/http"

// Audit events go to the structured log. Reasons for failures are
// server-side only; the wire responses stay uniform.

func (h *Handler) auditLoginSuccess(r *http.Request, userID int64, username string) {
	h.log.Info("auth.login.success",
		"user_id", userID,
		"username", username,
		"remote", r.RemoteAddr,
	)
}

func (h *Handler) auditLoginFailed(r *http.Request, identifier string) {
	h.log.Warn("auth.login.failed",
		"identifier", identifier,
		"remote", r.RemoteAddr,
	)
}

func (h *Handler) auditTokenRejected(r *http.Request, reason string) {
	h.log.Warn("auth.token.rejected",
		"reason", reason,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
	)
}

func (h *Handler) auditAccountCreated(r *http.Request, userID int64, username string) {
	h.log.Info("account.created",
		"user_id", userID,
		"username", username,
		"remote", r.RemoteAddr,
	)
}

func (h *Handler) auditAccountUpdated(r *http.Request, userID int64) {
	h.log.Info("account.updated",
		"user_id", userID,
		"remote", r.RemoteAddr,
	)
}
