package api

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/pkg/errors"
)

// LoginInput defines the credentials for a password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput defines the data for account registration. ConfirmPassword is
// checked client-side and never sent to the backend.
type SignupInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=Password"`
}

// LoginResult is the payload a successful login returns. Token may be empty
// when the backend relies on its cookie session alone.
type LoginResult struct {
	User  *entity.User
	Token string
}

// loginPayload is the wire shape of a successful login response.
type loginPayload struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

// mePayload is the wire shape of the current-user endpoint.
type mePayload struct {
	User userPayload `json:"user"`
}

// Login exchanges credentials for a session. 401 means invalid credentials,
// 403 means the email is not verified yet; callers branch on the Error
// predicates for status-specific messaging.
func (c *Client) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate login input")
	}

	var payload loginPayload
	if err := c.post(ctx, "/auth/login", input, &payload); err != nil {
		return nil, err
	}

	return &LoginResult{
		User:  payload.User.toEntity(),
		Token: payload.Token,
	}, nil
}

// Signup registers a new account. The backend sends the verification mail;
// the new session starts only after login.
func (c *Client) Signup(ctx context.Context, input SignupInput) error {
	if err := c.validate.Struct(input); err != nil {
		return errors.Wrap(err, "validate signup input")
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: input.Email, Password: input.Password}

	return c.post(ctx, "/auth/signup", body, nil)
}

// Logout invalidates the server-side session. Callers treat failure as
// best-effort; client state is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}

// Me fetches the current user. A 401 means the session is gone; bootstrap
// and refresh translate that into a logged-out state.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var payload mePayload
	if err := c.get(ctx, "/auth/me", nil, &payload); err != nil {
		return nil, err
	}

	return payload.User.toEntity(), nil
}
