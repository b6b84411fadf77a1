package api

import (
	"context"
	"net/url"
	"strconv"

	"arena/internal/domain/entity"
)

// ListOptions control paging and search for profile browsing.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}

	return q
}

// ProfilePage is one page of browsable profiles.
type ProfilePage struct {
	Profiles   []*entity.Profile
	Pagination Pagination
}

// dashboardPayload mirrors the backend's nested page shape: the envelope's
// data field wraps the service's own {data, pagination} object.
type dashboardPayload struct {
	Data       []profilePayload `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// DashboardProfiles lists other users' profiles for the explore view.
func (c *Client) DashboardProfiles(ctx context.Context, opts ListOptions) (*ProfilePage, error) {
	var payload dashboardPayload
	if err := c.get(ctx, "/dashboard/profiles", opts.query(), &payload); err != nil {
		return nil, err
	}

	return &ProfilePage{
		Profiles:   profilesToEntities(payload.Data),
		Pagination: payload.Pagination,
	}, nil
}
