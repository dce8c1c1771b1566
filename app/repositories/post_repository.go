package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"pressroom/app/models"
	"pressroom/app/storage"

	"go.uber.org/zap"
)

// PostFileExt is the extension of post document files.
const PostFileExt = ".md"

// postMeta is the front-matter block of a post document. The slug is the
// file name and the content is the document body, so neither appears here.
type postMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	ReadingTime string   `yaml:"readingTime"`
	Featured    bool     `yaml:"featured"`
}

// FilePostRepository implements PostRepository over a directory of
// front-matter documents, one file per slug.
type FilePostRepository struct {
	store  *storage.DocumentStore
	logger *zap.Logger
}

// NewFilePostRepository creates a repository over the given content directory.
func NewFilePostRepository(dir string, logger *zap.Logger) *FilePostRepository {
	return &FilePostRepository{
		store:  storage.NewDocumentStore(dir, PostFileExt),
		logger: logger,
	}
}

// Create writes a new post. The slug must not be taken; an existing slug
// fails with ErrAlreadyExists and the stored record is untouched.
func (r *FilePostRepository) Create(post *models.Post) error {
	post.ApplyDefaults()
	data, err := encodePost(post)
	if err != nil {
		return err
	}
	if err := r.store.Put(post.Slug, data, storage.CreateOnly); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: post %q", ErrAlreadyExists, post.Slug)
		}
		return fmt.Errorf("failed to write post %q: %w", post.Slug, err)
	}
	return nil
}

// GetBySlug reads a single post.
func (r *FilePostRepository) GetBySlug(slug string) (*models.Post, error) {
	data, err := r.store.Get(slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidID) {
			return nil, fmt.Errorf("%w: post %q", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("failed to read post %q: %w", slug, err)
	}
	return decodePost(slug, data)
}

// List returns all decodable posts, newest first, along with the number of
// records skipped because they were unreadable or malformed. A broken
// record never aborts the listing.
func (r *FilePostRepository) List() ([]*models.Post, int, error) {
	docs, skipped, err := r.store.List()
	if err != nil {
		return nil, 0, err
	}
	posts := make([]*models.Post, 0, len(docs))
	for _, doc := range docs {
		post, err := decodePost(doc.ID, doc.Data)
		if err != nil {
			skipped++
			r.logger.Warn("skipping malformed post",
				zap.String("slug", doc.ID),
				zap.Error(err))
			continue
		}
		posts = append(posts, post)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, skipped, nil
}

// Update applies the patch to an existing post. The slug is immutable
// through this path; a missing slug fails with ErrNotFound.
func (r *FilePostRepository) Update(slug string, patch *models.PostPatch) (*models.Post, error) {
	post, err := r.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	patch.Apply(post)
	data, err := encodePost(post)
	if err != nil {
		return nil, err
	}
	if err := r.store.Put(slug, data, storage.Upsert); err != nil {
		return nil, fmt.Errorf("failed to write post %q: %w", slug, err)
	}
	return post, nil
}

// Delete removes the post's backing file.
func (r *FilePostRepository) Delete(slug string) error {
	if err := r.store.Delete(slug); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidID) {
			return fmt.Errorf("%w: post %q", ErrNotFound, slug)
		}
		return fmt.Errorf("failed to delete post %q: %w", slug, err)
	}
	return nil
}

func encodePost(post *models.Post) ([]byte, error) {
	meta := postMeta{
		Title:       post.Title,
		Description: post.Description,
		Date:        post.Date,
		Author:      post.Author,
		Tags:        post.Tags,
		Image:       post.Image,
		ReadingTime: post.ReadingTime,
		Featured:    post.Featured,
	}
	data, err := storage.EncodeFrontMatter(meta, post.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode post %q: %w", post.Slug, err)
	}
	return data, nil
}

func decodePost(slug string, data []byte) (*models.Post, error) {
	var meta postMeta
	body, err := storage.DecodeFrontMatter(data, &meta)
	if err != nil {
		return nil, fmt.Errorf("failed to decode post %q: %w", slug, err)
	}
	return &models.Post{
		Slug:        slug,
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Author:      meta.Author,
		Tags:        meta.Tags,
		Image:       meta.Image,
		ReadingTime: meta.ReadingTime,
		Featured:    meta.Featured,
		Content:     body,
	}, nil
}
