package controllers

import (
	"encoding/json"
	"net/http"

	"pressroom/app/audit"
	"pressroom/app/models"
	"pressroom/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// JobController handles HTTP requests for job postings.
type JobController struct {
	service *services.JobService
	audit   *audit.Log
	logger  *zap.Logger
}

// NewJobController creates a new JobController.
func NewJobController(service *services.JobService, auditLog *audit.Log, logger *zap.Logger) *JobController {
	return &JobController{service: service, audit: auditLog, logger: logger}
}

// List handles the public job listing; only active postings appear.
func (jc *JobController) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := jc.service.ListJobs(false)
	if err != nil {
		sendServiceError(w, err, jc.logger)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

// AdminList is the authenticated listing including inactive postings.
func (jc *JobController) AdminList(w http.ResponseWriter, r *http.Request) {
	jobs, err := jc.service.ListJobs(true)
	if err != nil {
		sendServiceError(w, err, jc.logger)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

// Show handles displaying a single posting.
func (jc *JobController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, err := jc.service.GetJob(id)
	if err != nil {
		sendServiceError(w, err, jc.logger)
		return
	}
	sendJSON(w, http.StatusOK, job)
}

// Create handles creating a new posting. The ID and posted date are
// generated server-side.
func (jc *JobController) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		models.JobPosting
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	job := payload.JobPosting
	// New postings go live unless the payload says otherwise.
	job.IsActive = payload.IsActive == nil || *payload.IsActive
	// The ID is always generated; a caller-supplied one is ignored.
	job.ID = ""
	if err := jc.service.CreateJob(&job); err != nil {
		sendServiceError(w, err, jc.logger)
		return
	}
	recordAudit(jc.audit, r, "create", "job", job.ID, jc.logger)
	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"job":     job,
	})
}

// Update shallow-merges a partial payload into an existing posting.
func (jc *JobController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch models.JobPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	job, err := jc.service.UpdateJob(id, &patch)
	if err != nil {
		sendServiceError(w, err, jc.logger)
		return
	}
	recordAudit(jc.audit, r, "update", "job", id, jc.logger)
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"job":     job,
	})
}

// Delete removes a posting. Its ID is never reused.
func (jc *JobController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := jc.service.DeleteJob(id); err != nil {
		sendServiceError(w, err, jc.logger)
		return
	}
	recordAudit(jc.audit, r, "delete", "job", id, jc.logger)
	w.WriteHeader(http.StatusNoContent)
}
