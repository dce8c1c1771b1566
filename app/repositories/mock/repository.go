package mock

import (
	"strconv"
	"sync"

	"pressroom/app/models"
	"pressroom/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts   map[string]*models.Post
	Skipped int
	mutex   sync.RWMutex
}

// JobRepository is an in-memory JobRepository for tests.
type JobRepository struct {
	jobs   []*models.JobPosting
	nextID int64
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*models.Post)}
}

func NewJobRepository() *JobRepository {
	return &JobRepository{nextID: 1}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.Slug]; exists {
		return repositories.ErrAlreadyExists
	}
	post.ApplyDefaults()
	clone := *post
	m.posts[post.Slug] = &clone
	return nil
}

func (m *PostRepository) GetBySlug(slug string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[slug]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *PostRepository) List() ([]*models.Post, int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	return posts, m.Skipped, nil
}

func (m *PostRepository) Update(slug string, patch *models.PostPatch) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[slug]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	patch.Apply(post)
	clone := *post
	return &clone, nil
}

func (m *PostRepository) Delete(slug string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[slug]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, slug)
	return nil
}

// JobRepository implementation

func (m *JobRepository) Create(job *models.JobPosting) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	job.ID = strconv.FormatInt(m.nextID, 10)
	m.nextID++
	job.ApplyDefaults()
	clone := *job
	m.jobs = append(m.jobs, &clone)
	return nil
}

func (m *JobRepository) GetByID(id string) (*models.JobPosting, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, job := range m.jobs {
		if job.ID == id {
			clone := *job
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *JobRepository) List(includeInactive bool) ([]*models.JobPosting, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	jobs := []*models.JobPosting{}
	for _, job := range m.jobs {
		if !includeInactive && !job.IsActive {
			continue
		}
		clone := *job
		jobs = append(jobs, &clone)
	}
	return jobs, nil
}

func (m *JobRepository) Update(id string, patch *models.JobPatch) (*models.JobPosting, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, job := range m.jobs {
		if job.ID == id {
			patch.Apply(job)
			clone := *job
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *JobRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, job := range m.jobs {
		if job.ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}
