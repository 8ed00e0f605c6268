package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Opportunity is a job or internship posting from the catalog. The matching
// engine reads only RequiredSkills and Sector/Department; every other field
// passes through to the MatchResult untouched.
type Opportunity struct {
	ID             uuid.UUID  `json:"id,omitempty"`
	Title          string     `json:"title" validate:"required,min=1"`
	Company        string     `json:"company,omitempty"`
	Location       string     `json:"location,omitempty"`
	Type           string     `json:"type,omitempty"`
	Salary         string     `json:"salary,omitempty"`
	URL            string     `json:"url,omitempty"`
	Description    string     `json:"description,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	RequiredSkills []string   `json:"required_skills"`
	Sector         *string    `json:"sector,omitempty"`
	Department     *string    `json:"department,omitempty"`
}

// SectorOrDepartment resolves the optional-field fallback in one place:
// sector first, then department, else empty string.
func (o *Opportunity) SectorOrDepartment() string {
	if o.Sector != nil && *o.Sector != "" {
		return *o.Sector
	}
	if o.Department != nil {
		return *o.Department
	}
	return ""
}

// Validate checks the opportunity fields accepted at API boundaries.
func (o *Opportunity) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
