package api

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/pkg/errors"
)

// SavedProfiles returns every profile the current user has saved. Queried in
// bulk once per screen load so card state ("Saved" vs "Save") is computed
// locally instead of probed per profile.
func (c *Client) SavedProfiles(ctx context.Context) ([]*entity.Profile, error) {
	var payload []profilePayload
	if err := c.get(ctx, "/profiles/saved", nil, &payload); err != nil {
		return nil, err
	}

	return profilesToEntities(payload), nil
}

// SaveProfileToFavorites adds a profile to the current user's saved list.
func (c *Client) SaveProfileToFavorites(ctx context.Context, profileID string) error {
	if profileID == "" {
		return errors.New("profile id is required")
	}

	return c.post(ctx, "/profiles/"+profileID+"/save", nil, nil)
}

// UnsaveProfile removes a profile from the current user's saved list.
func (c *Client) UnsaveProfile(ctx context.Context, profileID string) error {
	if profileID == "" {
		return errors.New("profile id is required")
	}

	return c.delete(ctx, "/profiles/"+profileID+"/save")
}

// React records a like or dislike on a profile and returns the server's
// authoritative counts. The client replaces its counters wholesale; there is
// no local reconciliation beyond that.
func (c *Client) React(ctx context.Context, profileID string, kind entity.ReactionKind) (*entity.ReactionCounts, error) {
	if profileID == "" {
		return nil, errors.New("profile id is required")
	}
	if !kind.IsValid() {
		return nil, errors.Errorf("invalid reaction kind: %s", kind)
	}

	body := struct {
		Type string `json:"type"`
	}{Type: string(kind)}

	var counts entity.ReactionCounts
	if err := c.post(ctx, "/profiles/"+profileID+"/reactions", body, &counts); err != nil {
		return nil, err
	}

	return &counts, nil
}

// Comments lists the comments on a profile, newest ordering decided by the
// server.
func (c *Client) Comments(ctx context.Context, profileID string) ([]*entity.Comment, error) {
	if profileID == "" {
		return nil, errors.New("profile id is required")
	}

	var payload []commentPayload
	if err := c.get(ctx, "/profiles/"+profileID+"/comments", nil, &payload); err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, 0, len(payload))
	for i := range payload {
		comments = append(comments, payload[i].toEntity())
	}

	return comments, nil
}

// AddComment posts a comment on a profile and returns the stored record.
func (c *Client) AddComment(ctx context.Context, profileID, body string) (*entity.Comment, error) {
	if profileID == "" {
		return nil, errors.New("profile id is required")
	}
	if body == "" {
		return nil, errors.New("comment body is required")
	}

	req := struct {
		Body string `json:"body"`
	}{Body: body}

	var payload commentPayload
	if err := c.post(ctx, "/profiles/"+profileID+"/comments", req, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
