package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"titlecheck/config"
	"titlecheck/internal/delivery"
	"titlecheck/internal/delivery/api"
	"titlecheck/internal/delivery/api/router/handler"
	"titlecheck/internal/domain/repository"
	"titlecheck/internal/errors"
	"titlecheck/internal/infra/auth"
	logs "titlecheck/internal/infra/log"
	"titlecheck/internal/infra/persistence/mongo"
	"titlecheck/internal/infra/persistence/postgres"
	"titlecheck/internal/infra/scorer"
	"titlecheck/internal/usecase/impl"
)

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

type userRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserRepository,
		),
	)
}

// newUserRepository opens the credential store selected by store.driver.
func newUserRepository(params userRepositoryParams) (repository.UserRepository, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverMongo:
		collection, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return mongo.NewUserRepository(collection), nil
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewUserRepository(db), nil
	default:
		return nil, errors.Errorf("unsupported store driver: %q", params.Config.Store.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			scorer.New,
			impl.NewValidator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewTitleService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTitleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
