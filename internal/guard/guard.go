// Package guard decides, before any screen renders, whether a navigation is
// allowed, redirected or must wait. The decision is a pure function of the
// auth state and the target route's declared requirements; the only side
// channel is an explicit profile-existence probe, issued on demand and never
// buried in screen logic.
package guard

import (
	"context"
	"log/slog"

	"arena/internal/auth"
)

// Well-known redirect targets.
const (
	PathLogin         = "/login"
	PathVerifyEmail   = "/verify-email"
	PathDashboard     = "/dashboard"
	PathCreateProfile = "/create-profile"
)

// Requirements are a route's declared access requirements.
type Requirements struct {
	// AdminOnly restricts the route to admin accounts.
	AdminOnly bool
	// RequiresProfile gates the route on a completed gaming profile.
	// Admin accounts have no profile concept and bypass this.
	RequiresProfile bool
}

// Kind is the category of a guard decision.
type Kind int

const (
	// Allow renders the requested screen.
	Allow Kind = iota
	// Redirect navigates elsewhere instead.
	Redirect
	// Wait renders a neutral waiting state; no decision is made until the
	// next auth state change re-triggers evaluation.
	Wait
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Kind Kind
	// Target is the redirect destination when Kind is Redirect.
	Target string
	// From carries the originally requested path on a login redirect so the
	// user can be returned there afterwards.
	From string
}

func allow() Decision { return Decision{Kind: Allow} }
func wait() Decision { return Decision{Kind: Wait} }
func redirect(to string) Decision { return Decision{Kind: Redirect, Target: to} }

// ProfileProber answers whether the current user has a gaming profile. A 404
// from the backend maps to (false, nil); any other failure is an error.
type ProfileProber interface {
	HasProfile(ctx context.Context) (bool, error)
}

// Guard evaluates route requirements against auth state.
type Guard struct {
	prober ProfileProber
	logger *slog.Logger
}

// New creates a Guard.
func New(prober ProfileProber, logger *slog.Logger) *Guard {
	return &Guard{prober: prober, logger: logger}
}

// Decide returns the verdict for navigating to path under the given state
// and requirements. Checks run in strict precedence order: loading, then
// authentication, then email verification, then role, then profile
// completeness. Each failure mode has a narrower remediation than the one
// before it; checking out of order could bounce an unverified admin into a
// profile-creation loop instead of the verification screen.
func (g *Guard) Decide(ctx context.Context, state auth.State, req Requirements, path string) Decision {
	// 1. Bootstrap has not resolved yet: decide nothing.
	if state.Loading {
		return wait()
	}

	// 2. Not logged in: go to login, remembering where the user was headed.
	if !state.IsAuthenticated() {
		d := redirect(PathLogin)
		d.From = path

		return d
	}

	// 3. Logged in but unverified: verification outranks everything below.
	if !state.User.IsEmailVerified {
		return redirect(PathVerifyEmail)
	}

	// 4. Admin-only route without the admin role.
	if req.AdminOnly && !state.IsAdmin() {
		return redirect(PathDashboard)
	}

	// 5. Profile-gated route for a non-admin without a profile. The gate is
	// skipped on the create-profile screen itself, or it would redirect to
	// where the user already is.
	if req.RequiresProfile && !state.IsAdmin() && path != PathCreateProfile {
		hasProfile, err := g.prober.HasProfile(ctx)
		if err != nil {
			// The probe failing is not a license to guess: degrade to the
			// waiting state rather than an incorrect allow or deny.
			g.logger.Warn("profile probe failed, deferring decision",
				slog.String("path", path),
				slog.Any("error", err),
			)

			return wait()
		}
		if !hasProfile {
			return redirect(PathCreateProfile)
		}
	}

	return allow()
}
