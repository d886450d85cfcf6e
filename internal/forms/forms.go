// Package forms validates user input before it is sent to the workout API.
package forms

import (
	"errors"
	"net/mail"
	"sort"
	"strconv"
	"strings"

	"github.com/meltforce/momentum/internal/models"
)

// MinPasswordLength is the shortest password accepted on register and change.
const MinPasswordLength = 6

// ErrInvalid is matched by every FieldErrors value.
var ErrInvalid = errors.New("invalid input")

// FieldErrors maps a form field to what is wrong with it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalid) match any FieldErrors.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalid
}

// err returns fe as an error, or nil when it is empty.
func (fe FieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Login is the sign-in form.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the form and returns the request body.
func (f Login) Validate() (models.Credentials, error) {
	fe := FieldErrors{}
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		fe["email"] = "Email is required"
	case !validEmail(email):
		fe["email"] = "Email is invalid"
	}
	if f.Password == "" {
		fe["password"] = "Password is required"
	}
	if err := fe.err(); err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Email: email, Password: f.Password}, nil
}

// Register is the sign-up form.
type Register struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks the form and returns the request body. The confirmation
// field is not sent.
func (f Register) Validate() (models.Registration, error) {
	fe := FieldErrors{}
	username := strings.TrimSpace(f.Username)
	email := strings.TrimSpace(f.Email)
	if username == "" {
		fe["username"] = "Username is required"
	}
	switch {
	case email == "":
		fe["email"] = "Email is required"
	case !validEmail(email):
		fe["email"] = "Email is invalid"
	}
	checkNewPassword(fe, "password", f.Password, f.ConfirmPassword)
	if err := fe.err(); err != nil {
		return models.Registration{}, err
	}
	return models.Registration{Username: username, Email: email, Password: f.Password}, nil
}

// Profile is the profile form. Weight and height arrive as typed text and may
// be blank.
type Profile struct {
	Username string `json:"username"`
	Weight   string `json:"weight"`
	Height   string `json:"height"`
}

// Validate checks the form and returns the update body. Blank weight or
// height is left out of the update.
func (f Profile) Validate() (models.ProfileUpdate, error) {
	fe := FieldErrors{}
	username := strings.TrimSpace(f.Username)
	if username == "" {
		fe["username"] = "Username is required"
	}
	weight, ok := optionalNumber(f.Weight)
	if !ok {
		fe["weight"] = "Weight must be a number"
	}
	height, ok := optionalNumber(f.Height)
	if !ok {
		fe["height"] = "Height must be a number"
	}
	if err := fe.err(); err != nil {
		return models.ProfileUpdate{}, err
	}
	return models.ProfileUpdate{Username: username, Weight: weight, Height: height}, nil
}

// Password is the change-password form.
type Password struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks the form and returns the request body.
func (f Password) Validate() (models.PasswordChange, error) {
	fe := FieldErrors{}
	if f.OldPassword == "" {
		fe["oldPassword"] = "Current password is required"
	}
	checkNewPassword(fe, "newPassword", f.NewPassword, f.ConfirmPassword)
	if err := fe.err(); err != nil {
		return models.PasswordChange{}, err
	}
	return models.PasswordChange{OldPassword: f.OldPassword, NewPassword: f.NewPassword}, nil
}

// Exercise is the new-exercise form of the library page.
type Exercise struct {
	Name           string `json:"name"`
	MuscleGroup    string `json:"muscleGroup"`
	Description    string `json:"description"`
	RequiresWeight bool   `json:"requiresWeight"`
}

// Validate checks the form and returns the request body. The muscle group
// accepts the spellings ParseMuscleGroup does.
func (f Exercise) Validate() (models.NewExercise, error) {
	fe := FieldErrors{}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		fe["name"] = "Name is required"
	}
	var group models.MuscleGroup
	if strings.TrimSpace(f.MuscleGroup) == "" {
		fe["muscleGroup"] = "Choose a muscle group"
	} else if g, err := models.ParseMuscleGroup(f.MuscleGroup); err != nil {
		fe["muscleGroup"] = "Unknown muscle group"
	} else {
		group = g
	}
	if err := fe.err(); err != nil {
		return models.NewExercise{}, err
	}
	return models.NewExercise{
		Name:           name,
		MuscleGroup:    group,
		Description:    strings.TrimSpace(f.Description),
		RequiresWeight: f.RequiresWeight,
	}, nil
}

// ValidateTemplate checks a custom template before it is created or updated:
// a name, at least one day, and every planned exercise named with at least
// one recommended set.
func ValidateTemplate(t models.Template) error {
	fe := FieldErrors{}
	if strings.TrimSpace(t.Name) == "" {
		fe["name"] = "Name is required"
	}
	if len(t.Days) == 0 {
		fe["days"] = "Add at least one day"
	}
	for i, day := range t.Days {
		dayKey := "days[" + strconv.Itoa(i) + "]"
		if len(day.Exercises) == 0 {
			fe[dayKey] = "Add at least one exercise"
		}
		for j, ex := range day.Exercises {
			key := dayKey + ".exercises[" + strconv.Itoa(j) + "]"
			switch {
			case strings.TrimSpace(ex.Name) == "":
				fe[key] = "Name is required"
			case ex.RecommendedSets < 1:
				fe[key] = "Recommend at least one set"
			}
		}
	}
	return fe.err()
}

func checkNewPassword(fe FieldErrors, field, pw, confirm string) {
	switch {
	case pw == "":
		fe[field] = "Password is required"
	case len(pw) < MinPasswordLength:
		fe[field] = "Password must be at least " + strconv.Itoa(MinPasswordLength) + " characters"
	}
	if pw != confirm {
		fe["confirmPassword"] = "Passwords do not match"
	}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// optionalNumber parses s as a float. Blank input is (nil, true).
func optionalNumber(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
