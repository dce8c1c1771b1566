package controllers

import (
	"net/http"
	"strconv"

	"pressroom/app/audit"

	"go.uber.org/zap"
)

const defaultAuditLimit = 50

// AuditController exposes the admin mutation trail.
type AuditController struct {
	log    *audit.Log
	logger *zap.Logger
}

// NewAuditController creates a new AuditController.
func NewAuditController(log *audit.Log, logger *zap.Logger) *AuditController {
	return &AuditController{log: log, logger: logger}
}

// List returns the most recent audit entries, newest first.
func (ac *AuditController) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			sendError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := ac.log.List(limit)
	if err != nil {
		sendServiceError(w, err, ac.logger)
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}
