package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pressroom/app/models"
	"pressroom/app/storage"

	"go.uber.org/zap"
)

// FileJobRepository implements JobRepository over a single JSON-array
// collection file. Mutations are linearized by the collection file, so
// concurrent creates and updates never lose each other's writes.
type FileJobRepository struct {
	coll   *storage.CollectionFile
	logger *zap.Logger
}

// NewFileJobRepository creates a repository over the given collection file.
func NewFileJobRepository(path string, logger *zap.Logger) *FileJobRepository {
	return &FileJobRepository{
		coll:   storage.NewCollectionFile(path),
		logger: logger,
	}
}

// Create appends the job with a freshly generated ID. The ID is derived
// from the current time in milliseconds and is strictly greater than any
// ID already in the collection, so IDs are never recycled.
func (r *FileJobRepository) Create(job *models.JobPosting) error {
	return r.coll.Update(func(records []json.RawMessage) ([]json.RawMessage, error) {
		job.ID = nextJobID(records)
		job.ApplyDefaults()
		data, err := json.Marshal(job)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal job %q: %w", job.ID, err)
		}
		return append(records, data), nil
	})
}

// GetByID reads a single job posting. Malformed records in the
// collection are skipped, not fatal.
func (r *FileJobRepository) GetByID(id string) (*models.JobPosting, error) {
	var found *models.JobPosting
	err := r.coll.View(func(records []json.RawMessage) error {
		for _, rec := range records {
			job, err := unmarshalJob(rec)
			if err != nil {
				r.logger.Warn("skipping malformed job record", zap.Error(err))
				continue
			}
			if job.ID == id {
				found = job
				return nil
			}
		}
		return fmt.Errorf("%w: job %q", ErrNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List returns the job postings in collection order. With includeInactive
// false only active postings are returned, which is the public view. A
// malformed record is skipped and logged; it never aborts the listing.
func (r *FileJobRepository) List(includeInactive bool) ([]*models.JobPosting, error) {
	jobs := []*models.JobPosting{}
	err := r.coll.View(func(records []json.RawMessage) error {
		for _, rec := range records {
			job, err := unmarshalJob(rec)
			if err != nil {
				r.logger.Warn("skipping malformed job record", zap.Error(err))
				continue
			}
			if !includeInactive && !job.IsActive {
				continue
			}
			jobs = append(jobs, job)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update shallow-merges the patch into the stored record. Fields the patch
// omits keep their prior values.
func (r *FileJobRepository) Update(id string, patch *models.JobPatch) (*models.JobPosting, error) {
	var updated *models.JobPosting
	err := r.coll.Update(func(records []json.RawMessage) ([]json.RawMessage, error) {
		for i, rec := range records {
			job, err := unmarshalJob(rec)
			if err != nil {
				return nil, err
			}
			if job.ID != id {
				continue
			}
			patch.Apply(job)
			data, err := json.Marshal(job)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal job %q: %w", id, err)
			}
			records[i] = data
			updated = job
			return records, nil
		}
		return nil, fmt.Errorf("%w: job %q", ErrNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the posting from the collection.
func (r *FileJobRepository) Delete(id string) error {
	return r.coll.Update(func(records []json.RawMessage) ([]json.RawMessage, error) {
		for i, rec := range records {
			job, err := unmarshalJob(rec)
			if err != nil {
				return nil, err
			}
			if job.ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: job %q", ErrNotFound, id)
	})
}

func unmarshalJob(rec json.RawMessage) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := json.Unmarshal(rec, &job); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedRecord, err)
	}
	return &job, nil
}

// nextJobID picks the next ID: the current unix-millisecond timestamp,
// bumped past the highest numeric ID already present. Callers hold the
// collection lock, so two concurrent creates cannot pick the same ID.
func nextJobID(records []json.RawMessage) string {
	id := time.Now().UnixMilli()
	for _, rec := range records {
		var probe struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(rec, &probe); err != nil {
			continue
		}
		if v, err := strconv.ParseInt(probe.ID, 10, 64); err == nil && v >= id {
			id = v + 1
		}
	}
	return strconv.FormatInt(id, 10)
}
