package repositories

import "pressroom/app/models"

// PostRepository defines the interface for blog post data access.
// List also reports how many records were skipped as unreadable.
type PostRepository interface {
	Create(post *models.Post) error
	GetBySlug(slug string) (*models.Post, error)
	List() ([]*models.Post, int, error)
	Update(slug string, patch *models.PostPatch) (*models.Post, error)
	Delete(slug string) error
}

// JobRepository defines the interface for job posting data access.
type JobRepository interface {
	Create(job *models.JobPosting) error
	GetByID(id string) (*models.JobPosting, error)
	List(includeInactive bool) ([]*models.JobPosting, error)
	Update(id string, patch *models.JobPatch) (*models.JobPosting, error)
	Delete(id string) error
}
