package models

import "time"

// Defaults applied to job postings created without the corresponding field.
const (
	DefaultJobType    = "Full-time"
	DefaultExperience = "3+ years"
)

// ApplyDefaults fills generated and optional fields of a new posting.
// The ID is assigned by the repository, not here.
func (j *JobPosting) ApplyDefaults() {
	if j.PostedDate == "" {
		j.PostedDate = time.Now().Format(DateLayout)
	}
	if j.Type == "" {
		j.Type = DefaultJobType
	}
	if j.Experience == "" {
		j.Experience = DefaultExperience
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
}

// Apply overwrites the posting's fields with the non-nil fields of the
// patch. Omitted fields keep their stored values (shallow merge).
func (jp *JobPatch) Apply(job *JobPosting) {
	if jp.Title != nil {
		job.Title = *jp.Title
	}
	if jp.Department != nil {
		job.Department = *jp.Department
	}
	if jp.Location != nil {
		job.Location = *jp.Location
	}
	if jp.Type != nil {
		job.Type = *jp.Type
	}
	if jp.Experience != nil {
		job.Experience = *jp.Experience
	}
	if jp.Salary != nil {
		job.Salary = *jp.Salary
	}
	if jp.Description != nil {
		job.Description = *jp.Description
	}
	if jp.Requirements != nil {
		job.Requirements = *jp.Requirements
	}
	if jp.Benefits != nil {
		job.Benefits = *jp.Benefits
	}
	if jp.ApplicationDeadline != nil {
		job.ApplicationDeadline = *jp.ApplicationDeadline
	}
	if jp.IsActive != nil {
		job.IsActive = *jp.IsActive
	}
}
