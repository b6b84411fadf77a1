package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"
	"time"

	"arena/config"
	"arena/internal/delivery"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

type CallbackParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Handler *CallbackHandler
}

// callbackServer is a loopback listener for browser-based sign-in. The
// backend redirects here with a one-time token once the OAuth dance
// completes.
type callbackServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params CallbackParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())

	params.Handler.RegisterRoutes(echoServer)

	srv := &callbackServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *callbackServer) Serve(ctx context.Context) error {
	if s.cfg.Callback == nil || !s.cfg.Callback.Enabled {
		s.logger.Info("Sign-in callback listener disabled")

		return nil
	}

	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Callback.Port))
	s.logger.Info("Starting sign-in callback listener", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve callback listener")
	}

	return nil
}

func (s *callbackServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down sign-in callback listener")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
