package models

// User is the authenticated user's profile.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Weight   *float64 `json:"weight,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// AuthResponse is returned by the login endpoint.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the profile update body. Nil fields are left unchanged.
type ProfileUpdate struct {
	Username string   `json:"username,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// PasswordChange is the password update body.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Merge applies a profile update to u and returns the result.
func (u User) Merge(p ProfileUpdate) User {
	if p.Username != "" {
		u.Username = p.Username
	}
	if p.Weight != nil {
		u.Weight = p.Weight
	}
	if p.Height != nil {
		u.Height = p.Height
	}
	return u
}
