// Package auth owns the client's authentication state: the current user
// snapshot and the bootstrap loading gate. It is the only component allowed
// to mutate the session store or the user; everything else reads snapshots
// and requests changes through the operations here.
package auth

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"arena/internal/api"
	"arena/internal/domain/entity"
	"arena/internal/session"
)

// tokenParam is the query parameter OAuth callbacks land with.
const tokenParam = "token"

// Backend is the slice of the API client the manager needs. *api.Client
// satisfies it.
type Backend interface {
	Me(ctx context.Context) (*entity.User, error)
	Login(ctx context.Context, input api.LoginInput) (*api.LoginResult, error)
	Logout(ctx context.Context) error
}

// State is an immutable snapshot of the authentication state.
type State struct {
	User    *entity.User
	Loading bool
}

// IsAuthenticated reports whether a user is present.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the current user carries the admin role.
func (s State) IsAdmin() bool {
	return s.User.IsAdmin()
}

// Listener receives a state snapshot after every change.
type Listener func(State)

// Manager orchestrates session bootstrap, login, logout and refresh.
type Manager struct {
	backend Backend
	store   session.Store
	logger  *slog.Logger

	mu        sync.Mutex
	user      *entity.User
	loading   bool
	listeners map[int]Listener
	nextID    int

	bootstrapOnce sync.Once
}

// NewManager creates a Manager. Loading starts true and stays true until
// Bootstrap resolves, so route decisions made before bootstrap always wait.
func NewManager(backend Backend, store session.Store, logger *slog.Logger) *Manager {
	return &Manager{
		backend:   backend,
		store:     store,
		logger:    logger,
		loading:   true,
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return State{User: m.user, Loading: m.loading}
}

// Subscribe registers a listener for state changes and returns an
// unsubscribe function. The listener is not called with the current state;
// callers read Snapshot first.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// setState replaces the state under the lock and notifies listeners outside
// of it.
func (m *Manager) setState(user *entity.User, loading bool) {
	m.mu.Lock()
	m.user = user
	m.loading = loading
	snapshot := State{User: m.user, Loading: m.loading}
	listeners := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Bootstrap restores the session once at application start and returns the
// landing URL with any one-time token stripped, so a refresh of that URL
// never re-submits it. The token, when present, is persisted before the
// current-user fetch is issued. Bootstrap never fails: every failure path
// resolves to a logged-out state with loading false.
func (m *Manager) Bootstrap(ctx context.Context, landing *url.URL) *url.URL {
	cleaned := m.consumeLandingToken(landing)

	m.bootstrapOnce.Do(func() {
		m.bootstrap(ctx)
	})

	return cleaned
}

// consumeLandingToken persists a one-time ?token= parameter and strips it
// from the URL.
func (m *Manager) consumeLandingToken(landing *url.URL) *url.URL {
	if landing == nil {
		return nil
	}

	query := landing.Query()
	token := query.Get(tokenParam)
	if token == "" {
		return landing
	}

	if err := m.store.Set(token); err != nil {
		m.logger.Error("failed to persist callback token", slog.Any("error", err))
	}

	query.Del(tokenParam)
	cleaned := *landing
	cleaned.RawQuery = query.Encode()

	return &cleaned
}

func (m *Manager) bootstrap(ctx context.Context) {
	if _, ok := m.store.Get(); !ok {
		// No session to restore; resolve without a network call.
		m.setState(nil, false)

		return
	}

	user, err := m.backend.Me(ctx)
	if err != nil {
		// Any failure, 401 included, means the persisted session is dead.
		m.logger.Warn("session restore failed", slog.Any("error", err))
		if clearErr := m.store.Clear(); clearErr != nil {
			m.logger.Error("failed to clear session", slog.Any("error", clearErr))
		}
		m.setState(nil, false)

		return
	}

	m.setState(user, false)
}

// Login exchanges credentials for a session, persists any returned token and
// publishes the new user. On failure the previous state is left untouched
// and the error is returned for the caller to render; 401, 403 and other
// statuses are distinguished with the api error predicates.
func (m *Manager) Login(ctx context.Context, input api.LoginInput) (*api.LoginResult, error) {
	result, err := m.backend.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	if result.Token != "" {
		if storeErr := m.store.Set(result.Token); storeErr != nil {
			m.logger.Error("failed to persist session token", slog.Any("error", storeErr))
		}
	}

	m.mu.Lock()
	loading := m.loading
	m.mu.Unlock()
	m.setState(result.User, loading)

	return result, nil
}

// Logout invalidates the server-side session best-effort, then
// unconditionally clears the token and the user. The client never ends a
// logout still believing it is authenticated, even when the network call
// failed.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.backend.Logout(ctx); err != nil {
		m.logger.Warn("logout call failed, clearing local session anyway", slog.Any("error", err))
	}

	if err := m.store.Clear(); err != nil {
		m.logger.Error("failed to clear session", slog.Any("error", err))
	}

	m.mu.Lock()
	loading := m.loading
	m.mu.Unlock()
	m.setState(nil, loading)
}

// RefreshUser re-fetches the current user without toggling the loading
// gate. Used after plan or verification changes to pull fresh authoritative
// state. A 401 means the session died since bootstrap: the token is cleared
// and the user is logged out. Other failures leave state untouched and
// surface the error.
func (m *Manager) RefreshUser(ctx context.Context) error {
	user, err := m.backend.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			m.logger.Warn("session expired during refresh")
			if clearErr := m.store.Clear(); clearErr != nil {
				m.logger.Error("failed to clear session", slog.Any("error", clearErr))
			}
			m.mu.Lock()
			loading := m.loading
			m.mu.Unlock()
			m.setState(nil, loading)
		}

		return err
	}

	m.mu.Lock()
	loading := m.loading
	m.mu.Unlock()
	m.setState(user, loading)

	return nil
}
