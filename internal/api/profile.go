package api

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/pkg/errors"
)

// GameInput is one favorite-game entry on a profile save.
type GameInput struct {
	Name     string `json:"name" validate:"required"`
	CoverURL string `json:"coverUrl" validate:"omitempty,url"`
	Platform string `json:"platform"`
	Skill    string `json:"skill"`
}

// CharacterInput is one favorite-character entry on a profile save.
type CharacterInput struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// ProfileInput defines the explicit save action from the create/edit-profile
// screen. The same endpoint upserts: the backend creates the profile on
// first save and replaces it afterwards.
type ProfileInput struct {
	Username      string           `json:"username" validate:"required,min=3,max=32"`
	Bio           string           `json:"bio" validate:"max=500"`
	AvatarURL     string           `json:"avatar" validate:"omitempty,url"`
	Address       string           `json:"address"`
	Games         []GameInput      `json:"games" validate:"dive"`
	TopCharacters []CharacterInput `json:"topCharacters" validate:"dive"`
}

// MyProfile fetches the current user's gaming profile. A 404 is the normal
// "no profile yet" state for new accounts; callers detect it with IsNotFound
// rather than treating it as a failure.
func (c *Client) MyProfile(ctx context.Context) (*entity.Profile, error) {
	var payload profilePayload
	if err := c.get(ctx, "/profile/me", nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

// SaveProfile creates or replaces the current user's profile.
func (c *Client) SaveProfile(ctx context.Context, input ProfileInput) (*entity.Profile, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate profile input")
	}

	var payload profilePayload
	if err := c.post(ctx, "/profiles", input, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
