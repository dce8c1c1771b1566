package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressroom/app/audit"
	"pressroom/app/middleware"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"go.uber.org/zap"
)

// sendJSON writes data as a JSON response body.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes a JSON error body.
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// statusFor maps repository and service errors to transport status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendServiceError translates err into a response. Internal failures are
// logged and surfaced with a generic message.
func sendServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		sendError(w, status, "internal server error")
		return
	}
	sendError(w, status, err.Error())
}

// recordAudit logs a successful mutation to the audit trail. Audit
// failures never fail the request.
func recordAudit(log *audit.Log, r *http.Request, action, resource, key string, logger *zap.Logger) {
	if log == nil {
		return
	}
	actor := ""
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		actor = p.Subject
	}
	err := log.Record(audit.Entry{
		Actor:    actor,
		Action:   action,
		Resource: resource,
		Key:      key,
	})
	if err != nil {
		logger.Error("failed to record audit entry",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.String("key", key),
			zap.Error(err))
	}
}
