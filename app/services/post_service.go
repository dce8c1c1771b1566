package services

import (
	"errors"
	"fmt"
	"time"

	"pressroom/app/models"
	"pressroom/app/repositories"
)

// ErrInvalidInput is returned when a payload fails validation. The wrapped
// message names the offending field.
var ErrInvalidInput = errors.New("invalid input")

// PostService handles business logic for blog posts.
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost validates the payload and stores a new post. The slug is
// chosen by the author and is rejected if already taken.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := validateNewPost(post); err != nil {
		return err
	}
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repo.Create(post)
}

// GetPost retrieves a post by slug.
func (s *PostService) GetPost(slug string) (*models.Post, error) {
	return s.repo.GetBySlug(slug)
}

// ListPosts retrieves all posts plus the number of skipped records.
func (s *PostService) ListPosts() ([]*models.Post, int, error) {
	return s.repo.List()
}

// UpdatePost validates the patch and applies it to an existing post.
func (s *PostService) UpdatePost(slug string, patch *models.PostPatch) (*models.Post, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if err := validatePostPatch(patch); err != nil {
		return nil, err
	}
	return s.repo.Update(slug, patch)
}

// DeletePost removes a post by slug.
func (s *PostService) DeletePost(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	return s.repo.Delete(slug)
}

// validateNewPost checks the fields required at creation time.
func validateNewPost(post *models.Post) error {
	if post.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if post.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if post.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}

// validatePostPatch rejects patches that would blank a required field or
// store an unparsable date.
func validatePostPatch(patch *models.PostPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if patch.Content != nil && *patch.Content == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrInvalidInput)
	}
	if patch.Date != nil {
		if _, err := time.Parse(models.DateLayout, *patch.Date); err != nil {
			return fmt.Errorf("%w: date must use the %s format", ErrInvalidInput, models.DateLayout)
		}
	}
	return nil
}
