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

// PostController handles HTTP requests for blog posts. Side effects are
// confined to the service call; no handler touches the filesystem.
type PostController struct {
	service *services.PostService
	audit   *audit.Log
	logger  *zap.Logger
}

// NewPostController creates a new PostController.
func NewPostController(service *services.PostService, auditLog *audit.Log, logger *zap.Logger) *PostController {
	return &PostController{service: service, audit: auditLog, logger: logger}
}

// List handles the public post listing. Broken records are silently
// omitted so the marketing pages keep rendering.
func (pc *PostController) List(w http.ResponseWriter, r *http.Request) {
	posts, _, err := pc.service.ListPosts()
	if err != nil {
		sendServiceError(w, err, pc.logger)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

// AdminList is the authenticated listing; it also reports how many
// records were skipped as unreadable.
func (pc *PostController) AdminList(w http.ResponseWriter, r *http.Request) {
	posts, skipped, err := pc.service.ListPosts()
	if err != nil {
		sendServiceError(w, err, pc.logger)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts":   posts,
		"skipped": skipped,
	})
}

// Show handles displaying a single post.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	post, err := pc.service.GetPost(slug)
	if err != nil {
		sendServiceError(w, err, pc.logger)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := pc.service.CreatePost(&post); err != nil {
		sendServiceError(w, err, pc.logger)
		return
	}
	recordAudit(pc.audit, r, "create", "post", post.Slug, pc.logger)
	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"post":    post,
	})
}

// Update applies a partial update to an existing post. The slug in the
// path identifies the record and cannot be changed.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	var patch models.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	post, err := pc.service.UpdatePost(slug, &patch)
	if err != nil {
		sendServiceError(w, err, pc.logger)
		return
	}
	recordAudit(pc.audit, r, "update", "post", slug, pc.logger)
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"post":    post,
	})
}

// Delete removes a post.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if err := pc.service.DeletePost(slug); err != nil {
		sendServiceError(w, err, pc.logger)
		return
	}
	recordAudit(pc.audit, r, "delete", "post", slug, pc.logger)
	w.WriteHeader(http.StatusNoContent)
}
