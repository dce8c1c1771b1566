package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Slugs are lowercase, URL-safe and hyphen-separated.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate checks if the post meets all validation requirements.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.Date != "" {
		if _, err := time.Parse(DateLayout, p.Date); err != nil {
			return fmt.Errorf("date must use the %s format", DateLayout)
		}
	}
	return nil
}

// Validate checks if the job posting meets all validation requirements.
func (j *JobPosting) Validate() error {
	if err := validate.Struct(j); err != nil {
		return err
	}
	for _, d := range []string{j.PostedDate, j.ApplicationDeadline} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, d); err != nil {
			return fmt.Errorf("dates must use the %s format", DateLayout)
		}
	}
	return nil
}
