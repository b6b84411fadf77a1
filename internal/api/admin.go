package api

import (
	"context"
	"net/url"
	"strconv"

	"arena/internal/domain/entity"

	"github.com/pkg/errors"
)

// AdminUsersOptions filter the admin user listing. Search matches both email
// and profile username server-side.
type AdminUsersOptions struct {
	Search string
	Plan   entity.Plan
	Page   int
	Limit  int
}

func (o AdminUsersOptions) query() url.Values {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Plan != "" {
		q.Set("plan", string(o.Plan))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}

	return q
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []*entity.User
	Pagination Pagination
}

type adminUsersPayload struct {
	Users      []userPayload `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

// ListUsers lists accounts for the admin screen. Requires the admin role;
// non-admin callers get a 403.
func (c *Client) ListUsers(ctx context.Context, opts AdminUsersOptions) (*UserPage, error) {
	var payload adminUsersPayload
	if err := c.get(ctx, "/admin/users", opts.query(), &payload); err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(payload.Users))
	for i := range payload.Users {
		users = append(users, payload.Users[i].toEntity())
	}

	return &UserPage{Users: users, Pagination: payload.Pagination}, nil
}

// ToggleUserStatus flips an account between blocked and active and returns
// the updated record.
func (c *Client) ToggleUserStatus(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	var payload userPayload
	if err := c.patch(ctx, "/admin/users/"+userID+"/status", nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
