// Package profile models the user's career profile used to steer content
// improvement and template selection.
package profile

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Career levels accepted for TargetLevel.
const (
	LevelJunior    = "junior"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
)

// Profile captures the experience and target information collected at the
// start of an improvement run. TargetLevel and Industry are optional.
type Profile struct {
	YearsExperience int
	TargetPosition  string
	TargetLevel     string
	Industry        string
}

// Validate checks field constraints: years within 0-50, a non-empty target
// position of at most 100 characters, and a known target level when one is
// given. TargetLevel is compared case-insensitively.
func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.YearsExperience, validation.Min(0), validation.Max(50)),
		validation.Field(&p.TargetPosition, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.TargetLevel,
			validation.In(LevelJunior, LevelMid, LevelSenior, LevelExecutive).Error(
				"must be one of: junior, mid, senior, executive")),
	)
}

// Normalize lowercases the target level in place so later comparisons can be
// exact. Call before Validate.
func (p *Profile) Normalize() {
	p.TargetLevel = strings.ToLower(strings.TrimSpace(p.TargetLevel))
}

// IsConsistent reports whether the chosen target level plausibly matches the
// years of experience: juniors with more than 3 years and executives with
// fewer than 8 are flagged.
func (p Profile) IsConsistent() bool {
	if p.TargetPosition == "" || p.YearsExperience < 0 {
		return false
	}
	if p.TargetLevel == LevelJunior && p.YearsExperience > 3 {
		return false
	}
	if p.TargetLevel == LevelExecutive && p.YearsExperience < 8 {
		return false
	}
	return true
}

// ExperienceTier buckets years of experience for template selection.
func (p Profile) ExperienceTier() string {
	switch {
	case p.YearsExperience <= 2:
		return "entry"
	case p.YearsExperience <= 7:
		return "mid"
	case p.YearsExperience <= 15:
		return "senior"
	default:
		return "executive"
	}
}

// SuggestedLevel maps the experience tier to a target level, used as the
// default when the user leaves TargetLevel blank.
func (p Profile) SuggestedLevel() string {
	switch p.ExperienceTier() {
	case "entry":
		return LevelJunior
	case "mid":
		return LevelMid
	case "senior":
		return LevelSenior
	default:
		return LevelExecutive
	}
}
