package api

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/pkg/errors"
)

// CheckoutSession is the payment provider handoff for a plan upgrade. The
// caller redirects the user to URL; the provider returns them to the payment
// result route with the session id in the query string.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CreateCheckoutSession starts a plan upgrade. Free is not purchasable and
// re-buying the current plan is refused client-side before any network call.
func (c *Client) CreateCheckoutSession(ctx context.Context, plan entity.Plan) (*CheckoutSession, error) {
	if !plan.IsValid() {
		return nil, errors.Errorf("invalid plan: %s", plan)
	}
	if plan == entity.PlanFree {
		return nil, errors.New("free plan cannot be purchased")
	}

	body := struct {
		PlanID string `json:"planId"`
	}{PlanID: string(plan)}

	var checkout CheckoutSession
	if err := c.post(ctx, "/payment/create-session", body, &checkout); err != nil {
		return nil, err
	}

	return &checkout, nil
}

// VerifyPayment confirms a completed checkout with the backend. The caller
// refreshes the user afterwards to pick up the new plan.
func (c *Client) VerifyPayment(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}

	body := struct {
		SessionID string `json:"session_id"`
	}{SessionID: sessionID}

	return c.post(ctx, "/payment/verify", body, nil)
}
