package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/meltforce/momentum/internal/models"
	"github.com/meltforce/momentum/internal/session"
)

// Register creates an account. It does not sign in.
func (c *Client) Register(ctx context.Context, r models.Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, r, nil)
}

// Login exchanges credentials for a token and stores the resulting session.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &auth); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, errors.New("api: login response carried no token")
	}
	if err := c.sessions.Save(ctx, session.Session{Token: auth.Token, User: auth.User, SavedAt: time.Now().UTC()}); err != nil {
		return models.AuthResponse{}, fmt.Errorf("storing session: %w", err)
	}
	return auth, nil
}

// Logout forgets the stored session. The API has no logout call.
func (c *Client) Logout(ctx context.Context) error {
	return c.sessions.Clear(ctx)
}

// UpdatePassword changes the signed-in user's password.
func (c *Client) UpdatePassword(ctx context.Context, p models.PasswordChange) error {
	return c.do(ctx, http.MethodPut, "/users/password", nil, p, nil)
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var u models.User
	if err := c.get(ctx, "/users/profile", nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UpdateProfile saves profile changes and refreshes the user kept in the
// session. The API may answer with only the changed fields, so the answer is
// merged over the stored user.
func (c *Client) UpdateProfile(ctx context.Context, p models.ProfileUpdate) (models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", nil, p, &resp); err != nil {
		return models.User{}, err
	}

	sess, err := c.sessions.Load(ctx)
	if err != nil {
		return resp, nil
	}
	updated := sess.User.Merge(p)
	if resp.ID != "" {
		updated = resp
	}
	sess.User = updated
	if err := c.sessions.Save(ctx, sess); err != nil {
		return updated, fmt.Errorf("storing session: %w", err)
	}
	return updated, nil
}
