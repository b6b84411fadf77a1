package auth

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"arena/internal/api"
	"arena/internal/domain/entity"
	"arena/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a hand-rolled Backend double recording call counts.
type fakeBackend struct {
	meCalls     int
	meUser      *entity.User
	meErr       error
	loginResult *api.LoginResult
	loginErr    error
	logoutCalls int
	logoutErr   error
}

func (f *fakeBackend) Me(ctx context.Context) (*entity.User, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}

	return f.meUser, nil
}

func (f *fakeBackend) Login(ctx context.Context, input api.LoginInput) (*api.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.loginResult, nil
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	f.logoutCalls++

	return f.logoutErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func verifiedUser() *entity.User {
	return &entity.User{
		ID:              "u1",
		Email:           "player@example.com",
		Role:            entity.RoleUser,
		IsEmailVerified: true,
		Plan:            entity.PlanFree,
	}
}

func TestBootstrap_NoTokenSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	store := session.NewMemoryStore()
	mgr := NewManager(backend, store, testLogger())

	assert.True(t, mgr.Snapshot().Loading)

	mgr.Bootstrap(context.Background(), nil)

	state := mgr.Snapshot()
	assert.False(t, state.Loading)
	assert.Nil(t, state.User)
	assert.Zero(t, backend.meCalls, "bootstrap without a token must not call the backend")
}

func TestBootstrap_RestoresSessionFromStore(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)

	state := mgr.Snapshot()
	assert.False(t, state.Loading)
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	assert.Equal(t, 1, backend.meCalls)
}

func TestBootstrap_ConsumesOneTimeURLToken(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	mgr := NewManager(backend, store, testLogger())

	landing, err := url.Parse("http://localhost:3000/dashboard?token=one-time-tok&tab=games")
	require.NoError(t, err)

	cleaned := mgr.Bootstrap(context.Background(), landing)

	// Token persisted before the fetch...
	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "one-time-tok", token)

	// ...and no longer visible in the URL, while other params survive.
	assert.Empty(t, cleaned.Query().Get("token"))
	assert.Equal(t, "games", cleaned.Query().Get("tab"))

	// The restore ran because the token was written first.
	assert.Equal(t, 1, backend.meCalls)
}

func TestBootstrap_FetchFailureClearsSession(t *testing.T) {
	backend := &fakeBackend{meErr: &api.Error{StatusCode: 401, Message: "Unauthorized"}}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("stale"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)

	state := mgr.Snapshot()
	assert.False(t, state.Loading)
	assert.Nil(t, state.User)

	_, ok := store.Get()
	assert.False(t, ok, "a dead session token must be removed")
}

func TestBootstrap_RunsOnce(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)
	mgr.Bootstrap(context.Background(), nil)

	assert.Equal(t, 1, backend.meCalls)
}

func TestBootstrap_LoadingResolvesExactlyOnce(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())

	var transitions []bool
	unsubscribe := mgr.Subscribe(func(s State) {
		transitions = append(transitions, s.Loading)
	})
	defer unsubscribe()

	mgr.Bootstrap(context.Background(), nil)

	require.Len(t, transitions, 1)
	assert.False(t, transitions[0])
}

func TestLogin_PersistsTokenAndUser(t *testing.T) {
	backend := &fakeBackend{loginResult: &api.LoginResult{
		User:  verifiedUser(),
		Token: "fresh-token",
	}}
	store := session.NewMemoryStore()
	mgr := NewManager(backend, store, testLogger())

	result, err := mgr.Login(context.Background(), api.LoginInput{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)

	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "fresh-token", token)

	state := mgr.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, "player@example.com", state.User.Email)
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	backend := &fakeBackend{loginErr: &api.Error{StatusCode: 403, Message: "Please verify your email"}}
	store := session.NewMemoryStore()
	mgr := NewManager(backend, store, testLogger())

	_, err := mgr.Login(context.Background(), api.LoginInput{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.True(t, api.IsForbidden(err))

	assert.Nil(t, mgr.Snapshot().User)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestLogout_ClearsEvenWhenNetworkFails(t *testing.T) {
	backend := &fakeBackend{
		loginResult: &api.LoginResult{User: verifiedUser(), Token: "tok"},
		logoutErr:   &api.Error{StatusCode: 500, Message: "boom"},
	}
	store := session.NewMemoryStore()
	mgr := NewManager(backend, store, testLogger())

	_, err := mgr.Login(context.Background(), api.LoginInput{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	mgr.Logout(context.Background())

	assert.Equal(t, 1, backend.logoutCalls)
	assert.Nil(t, mgr.Snapshot().User)
	_, ok := store.Get()
	assert.False(t, ok, "logout must never leave a live token behind")
}

func TestRefreshUser_DoesNotToggleLoading(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)

	var sawLoading bool
	unsubscribe := mgr.Subscribe(func(s State) {
		if s.Loading {
			sawLoading = true
		}
	})
	defer unsubscribe()

	require.NoError(t, mgr.RefreshUser(context.Background()))
	assert.False(t, sawLoading)
}

func TestRefreshUser_IsIdempotent(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)

	require.NoError(t, mgr.RefreshUser(context.Background()))
	first := mgr.Snapshot().User
	require.NoError(t, mgr.RefreshUser(context.Background()))
	second := mgr.Snapshot().User

	assert.Equal(t, first, second)
}

func TestRefreshUser_UnauthorizedLogsOut(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)
	require.NotNil(t, mgr.Snapshot().User)

	backend.meErr = &api.Error{StatusCode: 401, Message: "Unauthorized"}

	err := mgr.RefreshUser(context.Background())
	require.Error(t, err)
	assert.Nil(t, mgr.Snapshot().User)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestRefreshUser_TransientFailureKeepsUser(t *testing.T) {
	backend := &fakeBackend{meUser: verifiedUser()}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("persisted"))

	mgr := NewManager(backend, store, testLogger())
	mgr.Bootstrap(context.Background(), nil)

	backend.meErr = &api.Error{StatusCode: 500, Message: "upstream down"}

	err := mgr.RefreshUser(context.Background())
	require.Error(t, err)
	assert.NotNil(t, mgr.Snapshot().User, "a transient failure must not log the user out")
	_, ok := store.Get()
	assert.True(t, ok)
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	backend := &fakeBackend{loginResult: &api.LoginResult{User: verifiedUser(), Token: "tok"}}
	store := session.NewMemoryStore()
	mgr := NewManager(backend, store, testLogger())

	calls := 0
	unsubscribe := mgr.Subscribe(func(State) { calls++ })

	_, err := mgr.Login(context.Background(), api.LoginInput{
		Email:    "player@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()
	mgr.Logout(context.Background())
	assert.Equal(t, 1, calls)
}
