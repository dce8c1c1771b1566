package models

import "time"

// DateLayout is the wire and on-disk format for all content dates.
const DateLayout = "2006-01-02"

// Defaults applied to posts created without the corresponding field.
const (
	DefaultAuthor      = "Marketing Team"
	DefaultImage       = "/images/blog/default.jpg"
	DefaultReadingTime = "5 min read"
)

// ApplyDefaults fills optional fields the author left empty.
func (p *Post) ApplyDefaults() {
	if p.Date == "" {
		p.Date = time.Now().Format(DateLayout)
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Image == "" {
		p.Image = DefaultImage
	}
	if p.ReadingTime == "" {
		p.ReadingTime = DefaultReadingTime
	}
}

// Apply overwrites the post's fields with the non-nil fields of the patch.
func (pp *PostPatch) Apply(post *Post) {
	if pp.Title != nil {
		post.Title = *pp.Title
	}
	if pp.Description != nil {
		post.Description = *pp.Description
	}
	if pp.Date != nil {
		post.Date = *pp.Date
	}
	if pp.Author != nil {
		post.Author = *pp.Author
	}
	if pp.Tags != nil {
		post.Tags = *pp.Tags
	}
	if pp.Image != nil {
		post.Image = *pp.Image
	}
	if pp.ReadingTime != nil {
		post.ReadingTime = *pp.ReadingTime
	}
	if pp.Featured != nil {
		post.Featured = *pp.Featured
	}
	if pp.Content != nil {
		post.Content = *pp.Content
	}
}
