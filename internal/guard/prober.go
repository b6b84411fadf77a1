package guard

import (
	"context"

	"arena/internal/api"
)

// apiProber implements ProfileProber against the backend's profile endpoint.
type apiProber struct {
	client *api.Client
}

// NewAPIProber creates a ProfileProber backed by the API client.
func NewAPIProber(client *api.Client) ProfileProber {
	return &apiProber{client: client}
}

// HasProfile implements ProfileProber. The 404 for a fresh account is an
// expected business state, not a failure, and is never surfaced as one.
func (p *apiProber) HasProfile(ctx context.Context) (bool, error) {
	if _, err := p.client.MyProfile(ctx); err != nil {
		if api.IsNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
