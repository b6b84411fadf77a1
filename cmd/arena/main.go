package main

import (
	"context"
	"log/slog"
	"os"

	"arena/config"
	"arena/internal/api"
	"arena/internal/auth"
	"arena/internal/delivery"
	"arena/internal/delivery/http"
	"arena/internal/guard"
	logs "arena/internal/infra/log"
	"arena/internal/nav"
	"arena/internal/session"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startParams struct {
	fx.In
	fx.Lifecycle

	Manager    *auth.Manager
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectAuth(),
		injectDelivery(),
		fx.Invoke(
			start,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		session.NewFileStore,
	)
}

func injectAuth() fx.Option {
	return fx.Options(
		fx.Provide(
			api.New,
			func(client *api.Client) auth.Backend { return client },
			auth.NewManager,
			guard.NewAPIProber,
			guard.New,
			nav.NewNavigator,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			http.NewCallbackHandler,
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func start(ctx context.Context, params startParams) {
	params.Manager.Bootstrap(ctx, nil)

	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start delivery", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
