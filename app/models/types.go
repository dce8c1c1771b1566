package models

// Post represents a blog article stored as a front-matter document.
// The slug is the record's identity and never changes after creation.
type Post struct {
	Slug        string   `json:"slug" validate:"required,slug,max=128"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	ReadingTime string   `json:"readingTime"`
	Featured    bool     `json:"featured"`
	Content     string   `json:"content" validate:"required"`
}

// JobPosting represents a career opening stored in the jobs collection file.
// The ID is generated at creation time and never reused.
type JobPosting struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title" validate:"required,max=200"`
	Department          string   `json:"department" validate:"required"`
	Location            string   `json:"location" validate:"required"`
	Type                string   `json:"type"`
	Experience          string   `json:"experience"`
	Salary              string   `json:"salary"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements"`
	Benefits            []string `json:"benefits"`
	PostedDate          string   `json:"postedDate"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	IsActive            bool     `json:"isActive"`
}

// PostPatch carries a partial update for a post. Nil fields are left
// untouched. The slug is not part of the patch: it is immutable.
type PostPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Date        *string   `json:"date"`
	Author      *string   `json:"author"`
	Tags        *[]string `json:"tags"`
	Image       *string   `json:"image"`
	ReadingTime *string   `json:"readingTime"`
	Featured    *bool     `json:"featured"`
	Content     *string   `json:"content"`
}

// JobPatch carries a partial update for a job posting. Nil fields are left
// untouched. The update is a shallow merge over a fixed field set; the ID
// and PostedDate are not patchable.
type JobPatch struct {
	Title               *string   `json:"title"`
	Department          *string   `json:"department"`
	Location            *string   `json:"location"`
	Type                *string   `json:"type"`
	Experience          *string   `json:"experience"`
	Salary              *string   `json:"salary"`
	Description         *string   `json:"description"`
	Requirements        *[]string `json:"requirements"`
	Benefits            *[]string `json:"benefits"`
	ApplicationDeadline *string   `json:"applicationDeadline"`
	IsActive            *bool     `json:"isActive"`
}
