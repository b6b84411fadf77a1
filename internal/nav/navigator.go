package nav

import (
	"context"
	"log/slog"

	"arena/internal/auth"
	"arena/internal/domain/entity"
	"arena/internal/guard"
)

// Resolution is the outcome of resolving one navigation.
type Resolution struct {
	Route    Route
	Found    bool
	Decision guard.Decision
}

// Navigator resolves navigations against the route table. It is re-invoked
// on every navigation and on every auth state change, mirroring how a
// router re-evaluates its guard per render.
type Navigator struct {
	manager *auth.Manager
	guard   *guard.Guard
	routes  map[string]Route
	logger  *slog.Logger
}

// NewNavigator creates a Navigator over the standard route table.
func NewNavigator(manager *auth.Manager, g *guard.Guard, logger *slog.Logger) *Navigator {
	routes := make(map[string]Route)
	for _, route := range Routes() {
		routes[route.Path] = route
	}

	return &Navigator{
		manager: manager,
		guard:   g,
		routes:  routes,
		logger:  logger,
	}
}

// Resolve evaluates a single navigation step. Redirect decisions are
// returned, not followed; the caller navigates again, which re-runs the
// guard against the (possibly changed) auth state.
func (n *Navigator) Resolve(ctx context.Context, path string) Resolution {
	route, ok := n.routes[path]
	if !ok {
		return Resolution{Found: false}
	}

	if route.Public {
		return Resolution{Route: route, Found: true, Decision: guard.Decision{Kind: guard.Allow}}
	}

	state := n.manager.Snapshot()
	decision := n.guard.Decide(ctx, state, route.Requirements, path)

	if decision.Kind == guard.Redirect {
		n.logger.Debug("navigation redirected",
			slog.String("from", path),
			slog.String("to", decision.Target),
		)
	}

	return Resolution{Route: route, Found: true, Decision: decision}
}

// AfterLogin picks the post-login destination: admins land on the admin
// users screen, everyone else returns to where they were headed, defaulting
// to the dashboard.
func AfterLogin(user *entity.User, from string) string {
	if user.IsAdmin() {
		return PathAdminUsers
	}
	if from != "" && from != PathLogin {
		return from
	}

	return PathDashboard
}
