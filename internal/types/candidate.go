// Package types provides type definitions for structured data used throughout the career-match system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateSkill is a self-reported or platform-recorded competency with a
// 1-5 proficiency level and a verification flag.
type CandidateSkill struct {
	Name     string `json:"name" validate:"required,min=1"`
	Level    int    `json:"level" validate:"required,min=1,max=5"`
	Verified bool   `json:"verified"`
}

// CandidateProfile holds everything the matching engine reads about a
// candidate. The order of Skills is significant: ties between equally
// similar skills keep the first-seen one.
type CandidateProfile struct {
	Skills       []CandidateSkill `json:"skills" validate:"dive"`
	FieldOfStudy string           `json:"field_of_study"`
}

// Validate enforces the documented precondition that skill levels are in
// 1..5. The engine does not clamp out-of-range levels, so every boundary
// that accepts a profile must call this first.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
