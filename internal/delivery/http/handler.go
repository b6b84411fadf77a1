package http

import (
	"log/slog"
	"net/http"

	"arena/internal/auth"
	"arena/internal/session"

	"github.com/labstack/echo/v4"
)

const callbackPath = "/callback"

// CallbackHandler receives the post-OAuth redirect from the backend and
// turns the one-time token in its query string into a local session.
type CallbackHandler struct {
	store   session.Store
	manager *auth.Manager
	logger  *slog.Logger
}

func NewCallbackHandler(store session.Store, manager *auth.Manager, logger *slog.Logger) *CallbackHandler {
	return &CallbackHandler{
		store:   store,
		manager: manager,
		logger:  logger,
	}
}

func (h *CallbackHandler) RegisterRoutes(e *echo.Echo) {
	e.GET(callbackPath, h.Callback)
}

// Callback persists the token and refreshes the signed-in user so the
// rest of the app observes the new session immediately.
func (h *CallbackHandler) Callback(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.HTML(http.StatusBadRequest, pageMissingToken)
	}

	if err := h.store.Set(token); err != nil {
		h.logger.Error("Failed to persist sign-in token", slog.Any("error", err))

		return c.HTML(http.StatusInternalServerError, pageFailed)
	}

	if err := h.manager.RefreshUser(c.Request().Context()); err != nil {
		h.logger.Warn("Sign-in token rejected", slog.Any("error", err))

		return c.HTML(http.StatusUnauthorized, pageFailed)
	}

	return c.HTML(http.StatusOK, pageSignedIn)
}

const (
	pageSignedIn     = `<!DOCTYPE html><html><body><p>Signed in. You can close this window.</p></body></html>`
	pageMissingToken = `<!DOCTYPE html><html><body><p>Missing sign-in token.</p></body></html>`
	pageFailed       = `<!DOCTYPE html><html><body><p>Sign-in failed. Please try again.</p></body></html>`
)
