package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidate(t *testing.T) {
	valid := Post{Slug: "a-valid-slug", Title: "Title", Content: "body"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Post)
	}{
		{"empty slug", func(p *Post) { p.Slug = "" }},
		{"uppercase slug", func(p *Post) { p.Slug = "Invalid" }},
		{"slug with underscore", func(p *Post) { p.Slug = "a_b" }},
		{"slug with trailing dash", func(p *Post) { p.Slug = "ends-" }},
		{"slug with double dash", func(p *Post) { p.Slug = "a--b" }},
		{"empty title", func(p *Post) { p.Title = "" }},
		{"empty content", func(p *Post) { p.Content = "" }},
		{"bad date", func(p *Post) { p.Date = "March 14" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := valid
			tt.mutate(&post)
			assert.Error(t, post.Validate())
		})
	}
}

func TestJobPostingValidate(t *testing.T) {
	valid := JobPosting{Title: "Role", Department: "Eng", Location: "Remote"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*JobPosting)
	}{
		{"empty title", func(j *JobPosting) { j.Title = "" }},
		{"empty department", func(j *JobPosting) { j.Department = "" }},
		{"empty location", func(j *JobPosting) { j.Location = "" }},
		{"bad posted date", func(j *JobPosting) { j.PostedDate = "yesterday" }},
		{"bad deadline", func(j *JobPosting) { j.ApplicationDeadline = "2026/01/01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := valid
			tt.mutate(&job)
			assert.Error(t, job.Validate())
		})
	}
}

func TestPostApplyDefaults(t *testing.T) {
	post := Post{Slug: "s", Title: "t", Content: "c"}
	post.ApplyDefaults()

	assert.Equal(t, time.Now().Format(DateLayout), post.Date)
	assert.Equal(t, DefaultAuthor, post.Author)
	assert.Equal(t, DefaultImage, post.Image)
	assert.Equal(t, DefaultReadingTime, post.ReadingTime)
	assert.NotNil(t, post.Tags)

	// Provided values are kept.
	custom := Post{Slug: "s", Title: "t", Content: "c", Author: "Jane", Date: "2025-01-01"}
	custom.ApplyDefaults()
	assert.Equal(t, "Jane", custom.Author)
	assert.Equal(t, "2025-01-01", custom.Date)
}

func TestJobApplyDefaults(t *testing.T) {
	job := JobPosting{Title: "t", Department: "d", Location: "l"}
	job.ApplyDefaults()

	assert.Equal(t, DefaultJobType, job.Type)
	assert.Equal(t, DefaultExperience, job.Experience)
	assert.Equal(t, time.Now().Format(DateLayout), job.PostedDate)
	assert.NotNil(t, job.Requirements)
	assert.NotNil(t, job.Benefits)
}

func TestPostPatchApply(t *testing.T) {
	post := Post{Slug: "keep", Title: "Old", Content: "old body", Featured: false}

	title := "New"
	featured := true
	patch := PostPatch{Title: &title, Featured: &featured}
	patch.Apply(&post)

	assert.Equal(t, "New", post.Title)
	assert.True(t, post.Featured)
	assert.Equal(t, "old body", post.Content)
	assert.Equal(t, "keep", post.Slug)
}

func TestJobPatchApply(t *testing.T) {
	job := JobPosting{ID: "1", Title: "Old", Department: "Eng", Location: "Remote", IsActive: true, PostedDate: "2026-01-01"}

	inactive := false
	salary := "$100k"
	patch := JobPatch{IsActive: &inactive, Salary: &salary}
	patch.Apply(&job)

	assert.False(t, job.IsActive)
	assert.Equal(t, "$100k", job.Salary)
	// Fields outside the patch, including generated ones, are untouched.
	assert.Equal(t, "1", job.ID)
	assert.Equal(t, "Old", job.Title)
	assert.Equal(t, "2026-01-01", job.PostedDate)
}
