// Package types provides type definitions for structured data used throughout the skill-gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillToken is a normalized skill name: lower-cased, whitespace-collapsed,
// canonicalized through the synonym table. Two tokens are equal iff they
// denote the same skill.
type SkillToken string

// String returns the token text.
func (t SkillToken) String() string { return string(t) }

// IsEmpty reports whether the token carries no skill name.
// Empty tokens are produced for blank input and must be filtered by callers.
func (t SkillToken) IsEmpty() bool { return t == "" }

// RoleSpec describes a target role as supplied by an external
// role/requirements provider.
type RoleSpec struct {
	RequiredSkills  []string           `json:"required_skills" validate:"omitempty,dive,max=128"`
	RoleType        string             `json:"role_type" validate:"max=64"`
	ExperienceLevel string             `json:"experience_level" validate:"max=64"`
	JobFrequency    map[string]float64 `json:"job_frequency,omitempty" validate:"omitempty,dive,gte=0,lte=1"`
}

// Validate validates the RoleSpec using the validator.
func (r *RoleSpec) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
