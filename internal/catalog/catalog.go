// Package catalog filters and looks up the user's exercise library.
package catalog

import (
	"sort"
	"strings"

	"github.com/meltforce/momentum/internal/models"
)

// TabAll is the library tab that shows every muscle group.
const TabAll = "ALL"

// ParseTab turns a tab value into a group filter. "" and "ALL" mean no
// filter and return "".
func ParseTab(s string) (models.MuscleGroup, error) {
	if s == "" || strings.EqualFold(s, TabAll) {
		return "", nil
	}
	return models.ParseMuscleGroup(s)
}

// Filter keeps the exercises in group (all groups when group is "") whose name
// or description contains query, ignoring case. Library order is kept.
func Filter(exercises []models.Exercise, group models.MuscleGroup, query string) []models.Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if group != "" && e.MuscleGroup != group {
			continue
		}
		if q != "" && !contains(e.Name, q) && !contains(e.Description, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Search is the workout builder's picker search: like Filter over every group,
// but the muscle group also matches ("legs", "full body").
func Search(exercises []models.Exercise, query string) []models.Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return exercises
	}
	var out []models.Exercise
	for _, e := range exercises {
		if contains(e.Name, q) || contains(e.Description, q) ||
			contains(string(e.MuscleGroup), q) || contains(e.MuscleGroup.Label(), q) {
			out = append(out, e)
		}
	}
	return out
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

// Tab is one muscle-group tab with the number of exercises under it.
type Tab struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Tabs lists ALL followed by every muscle group in display order.
func Tabs(exercises []models.Exercise) []Tab {
	counts := make(map[models.MuscleGroup]int)
	for _, e := range exercises {
		counts[e.MuscleGroup]++
	}
	tabs := []Tab{{Value: TabAll, Label: "All", Count: len(exercises)}}
	for _, g := range models.MuscleGroups {
		tabs = append(tabs, Tab{Value: string(g), Label: g.Label(), Count: counts[g]})
	}
	return tabs
}

// Library indexes exercises by id and by name.
type Library struct {
	all    []models.Exercise
	byID   map[string]models.Exercise
	byName map[string]models.Exercise
}

// NewLibrary indexes exercises. When two exercises share a name the first wins.
func NewLibrary(exercises []models.Exercise) *Library {
	l := &Library{
		all:    exercises,
		byID:   make(map[string]models.Exercise, len(exercises)),
		byName: make(map[string]models.Exercise, len(exercises)),
	}
	for _, e := range exercises {
		l.byID[e.ID] = e
		key := nameKey(e.Name)
		if _, dup := l.byName[key]; !dup {
			l.byName[key] = e
		}
	}
	return l
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// All returns the exercises in library order.
func (l *Library) All() []models.Exercise {
	return l.all
}

// Get looks an exercise up by id.
func (l *Library) Get(id string) (models.Exercise, bool) {
	e, ok := l.byID[id]
	return e, ok
}

// MatchName finds an exercise by name, ignoring case and extra whitespace.
func (l *Library) MatchName(name string) (models.Exercise, bool) {
	e, ok := l.byName[nameKey(name)]
	return e, ok
}

// Names fills in the display name of every exercise entry from the library.
// Entries already carrying a name are left alone.
func (l *Library) Names(w *models.Workout) {
	for i, ex := range w.Exercises {
		if ex.Name != "" {
			continue
		}
		if e, ok := l.byID[ex.ExerciseID]; ok {
			w.Exercises[i].Name = e.Name
		}
	}
}

// Sorted returns the exercises ordered by muscle group display order, then by
// name.
func Sorted(exercises []models.Exercise) []models.Exercise {
	rank := make(map[models.MuscleGroup]int, len(models.MuscleGroups))
	for i, g := range models.MuscleGroups {
		rank[g] = i
	}
	out := append([]models.Exercise(nil), exercises...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank[out[i].MuscleGroup], rank[out[j].MuscleGroup]
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
