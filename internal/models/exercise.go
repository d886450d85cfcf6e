package models

import (
	"fmt"
	"strings"
)

// MuscleGroup is the fixed category tag on an exercise.
type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "CHEST"
	MuscleGroupBack      MuscleGroup = "BACK"
	MuscleGroupShoulders MuscleGroup = "SHOULDERS"
	MuscleGroupArms      MuscleGroup = "ARMS"
	MuscleGroupLegs      MuscleGroup = "LEGS"
	MuscleGroupCore      MuscleGroup = "CORE"
	MuscleGroupFullBody  MuscleGroup = "FULL_BODY"
	MuscleGroupCardio    MuscleGroup = "CARDIO"
	MuscleGroupOther     MuscleGroup = "OTHER"
)

// MuscleGroups lists every group in display order.
var MuscleGroups = []MuscleGroup{
	MuscleGroupChest, MuscleGroupBack, MuscleGroupShoulders, MuscleGroupArms,
	MuscleGroupLegs, MuscleGroupCore, MuscleGroupFullBody, MuscleGroupCardio,
	MuscleGroupOther,
}

// ParseMuscleGroup accepts the wire form ("FULL_BODY") as well as the spellings
// people type ("full body", "Full-Body").
func ParseMuscleGroup(s string) (MuscleGroup, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, g := range MuscleGroups {
		if MuscleGroup(norm) == g {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown muscle group %q", s)
}

// Label renders the group for display, e.g. "Full Body".
func (g MuscleGroup) Label() string {
	words := strings.Split(strings.ToLower(string(g)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Exercise is an entry in the user's exercise library.
type Exercise struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	MuscleGroup    MuscleGroup `json:"muscleGroup"`
	Description    string      `json:"description"`
	RequiresWeight bool        `json:"requiresWeight"`
	UserID         string      `json:"userId,omitempty"`
}

// NewExercise is the request body for creating an exercise.
type NewExercise struct {
	Name           string      `json:"name"`
	MuscleGroup    MuscleGroup `json:"muscleGroup"`
	Description    string      `json:"description"`
	RequiresWeight bool        `json:"requiresWeight"`
}
