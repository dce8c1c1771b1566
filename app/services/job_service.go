package services

import (
	"fmt"
	"time"

	"pressroom/app/models"
	"pressroom/app/repositories"
)

// JobService handles business logic for job postings.
type JobService struct {
	repo repositories.JobRepository
}

// NewJobService creates a new JobService.
func NewJobService(repo repositories.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// CreateJob validates the payload and stores a new posting. The repository
// assigns the ID and posted date.
func (s *JobService) CreateJob(job *models.JobPosting) error {
	if err := validateNewJob(job); err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repo.Create(job)
}

// GetJob retrieves a posting by ID.
func (s *JobService) GetJob(id string) (*models.JobPosting, error) {
	return s.repo.GetByID(id)
}

// ListJobs retrieves postings; the public view excludes inactive ones.
func (s *JobService) ListJobs(includeInactive bool) ([]*models.JobPosting, error) {
	return s.repo.List(includeInactive)
}

// UpdateJob validates the patch and shallow-merges it into the stored
// posting.
func (s *JobService) UpdateJob(id string, patch *models.JobPatch) (*models.JobPosting, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := validateJobPatch(patch); err != nil {
		return nil, err
	}
	return s.repo.Update(id, patch)
}

// DeleteJob removes a posting by ID.
func (s *JobService) DeleteJob(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repo.Delete(id)
}

// validateNewJob checks the fields required at creation time. The ID and
// posted date are generated, so a caller-supplied value is ignored later.
func validateNewJob(job *models.JobPosting) error {
	if job.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if job.Department == "" {
		return fmt.Errorf("%w: department is required", ErrInvalidInput)
	}
	if job.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	return nil
}

// validateJobPatch rejects patches that would blank a required field or
// store an unparsable deadline.
func validateJobPatch(patch *models.JobPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if patch.Department != nil && *patch.Department == "" {
		return fmt.Errorf("%w: department cannot be empty", ErrInvalidInput)
	}
	if patch.Location != nil && *patch.Location == "" {
		return fmt.Errorf("%w: location cannot be empty", ErrInvalidInput)
	}
	if patch.ApplicationDeadline != nil && *patch.ApplicationDeadline != "" {
		if _, err := time.Parse(models.DateLayout, *patch.ApplicationDeadline); err != nil {
			return fmt.Errorf("%w: applicationDeadline must use the %s format", ErrInvalidInput, models.DateLayout)
		}
	}
	return nil
}
