package nav

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arena/internal/api"
	"arena/internal/auth"
	"arena/internal/domain/entity"
	"arena/internal/guard"
	"arena/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedBackend struct {
	user *entity.User
}

func (b *scriptedBackend) Me(ctx context.Context) (*entity.User, error) {
	if b.user == nil {
		return nil, &api.Error{StatusCode: 401, Message: "Unauthorized"}
	}

	return b.user, nil
}

func (b *scriptedBackend) Login(ctx context.Context, input api.LoginInput) (*api.LoginResult, error) {
	return &api.LoginResult{User: b.user, Token: "tok"}, nil
}

func (b *scriptedBackend) Logout(ctx context.Context) error { return nil }

type staticProber struct {
	hasProfile bool
}

func (p *staticProber) HasProfile(ctx context.Context) (bool, error) {
	return p.hasProfile, nil
}

func newNavigator(t *testing.T, user *entity.User, hasProfile bool, bootstrap bool) *Navigator {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := session.NewMemoryStore()
	if user != nil {
		require.NoError(t, store.Set("tok"))
	}

	manager := auth.NewManager(&scriptedBackend{user: user}, store, logger)
	if bootstrap {
		manager.Bootstrap(context.Background(), nil)
	}

	g := guard.New(&staticProber{hasProfile: hasProfile}, logger)

	return NewNavigator(manager, g, logger)
}

func verifiedPlayer() *entity.User {
	return &entity.User{ID: "u1", Role: entity.RoleUser, IsEmailVerified: true}
}

func verifiedAdmin() *entity.User {
	return &entity.User{ID: "a1", Role: entity.RoleAdmin, IsEmailVerified: true}
}

func TestResolve_UnknownPath(t *testing.T) {
	n := newNavigator(t, nil, false, true)

	res := n.Resolve(context.Background(), "/does-not-exist")
	assert.False(t, res.Found)
}

func TestResolve_PublicRouteIgnoresAuthState(t *testing.T) {
	// Not bootstrapped: loading is still true, but public routes render.
	n := newNavigator(t, nil, false, false)

	res := n.Resolve(context.Background(), PathLanding)
	require.True(t, res.Found)
	assert.Equal(t, guard.Allow, res.Decision.Kind)
}

func TestResolve_ProtectedRouteWaitsDuringBootstrap(t *testing.T) {
	n := newNavigator(t, verifiedPlayer(), true, false)

	res := n.Resolve(context.Background(), PathDashboard)
	require.True(t, res.Found)
	assert.Equal(t, guard.Wait, res.Decision.Kind)
}

func TestResolve_LoggedOutCarriesRequestedPath(t *testing.T) {
	n := newNavigator(t, nil, false, true)

	res := n.Resolve(context.Background(), PathPlans)
	require.True(t, res.Found)
	assert.Equal(t, guard.Redirect, res.Decision.Kind)
	assert.Equal(t, PathLogin, res.Decision.Target)
	assert.Equal(t, PathPlans, res.Decision.From)
}

func TestResolve_PlayerWithoutProfileIsSentToCreateProfile(t *testing.T) {
	n := newNavigator(t, verifiedPlayer(), false, true)

	res := n.Resolve(context.Background(), PathDashboard)
	assert.Equal(t, guard.Redirect, res.Decision.Kind)
	assert.Equal(t, PathCreateProfile, res.Decision.Target)

	// The create-profile screen itself must render.
	res = n.Resolve(context.Background(), PathCreateProfile)
	assert.Equal(t, guard.Allow, res.Decision.Kind)
}

func TestResolve_AdminUsersRequiresAdmin(t *testing.T) {
	n := newNavigator(t, verifiedPlayer(), true, true)

	res := n.Resolve(context.Background(), PathAdminUsers)
	assert.Equal(t, guard.Redirect, res.Decision.Kind)
	assert.Equal(t, PathDashboard, res.Decision.Target)

	n = newNavigator(t, verifiedAdmin(), false, true)
	res = n.Resolve(context.Background(), PathAdminUsers)
	assert.Equal(t, guard.Allow, res.Decision.Kind, "admins bypass the profile gate entirely")
}

func TestAfterLogin_Destinations(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
		from string
		want string
	}{
		{name: "admin goes to admin users", user: verifiedAdmin(), from: PathPlans, want: PathAdminUsers},
		{name: "player returns to requested path", user: verifiedPlayer(), from: PathPlans, want: PathPlans},
		{name: "player defaults to dashboard", user: verifiedPlayer(), from: "", want: PathDashboard},
		{name: "login page itself is not a destination", user: verifiedPlayer(), from: PathLogin, want: PathDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AfterLogin(tt.user, tt.from))
		})
	}
}
