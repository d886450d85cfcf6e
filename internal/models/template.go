package models

import (
	"strconv"
	"strings"
)

// TemplateType distinguishes built-in templates from user-authored ones.
type TemplateType string

const (
	TemplateSystem TemplateType = "SYSTEM"
	TemplateCustom TemplateType = "CUSTOM"
)

// TemplateExercise is a planned exercise inside a template day.
type TemplateExercise struct {
	Name                 string      `json:"name"`
	MuscleGroup          MuscleGroup `json:"muscleGroup"`
	Description          string      `json:"description"`
	RequiresWeight       bool        `json:"requiresWeight"`
	RecommendedSets      int         `json:"recommendedSets"`
	RecommendedRepsRange string      `json:"recommendedRepsRange"`
}

// RepsLowerBound returns the first number of the reps range ("8-12" -> 8).
// ok is false when the range does not start with a positive integer.
func (e TemplateExercise) RepsLowerBound() (int, bool) {
	s := strings.TrimSpace(e.RecommendedRepsRange)
	if i := strings.IndexAny(s, "-–"); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// TemplateDay is one day of a multi-day plan.
type TemplateDay struct {
	Name      string             `json:"name"`
	Exercises []TemplateExercise `json:"exercises"`
}

// Template is a reusable multi-day plan.
type Template struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        TemplateType  `json:"type,omitempty"`
	UserID      string        `json:"userId,omitempty"`
	Days        []TemplateDay `json:"days"`
}
