package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/session"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/localstore"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/secrets"
	"storefront/internal/infra/shopify"
	"storefront/internal/infra/supabase"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.StartTimeout(lifecycle.StartupSyncTimeout+lifecycle.DefaultTimeout),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			subscribeIdentityListeners,
			syncOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		newConfig,
		logs.New,
		context.Background,
		metrics.New,
		localstore.New,
		session.NewHolder,
		newTokenSource,
		supabase.New,
	)
}

// newConfig loads configuration and replaces secret references before validating it.
func newConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if err := secrets.Resolve(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to resolve secrets")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func newTokenSource(holder *session.Holder) service.TokenSource {
	return holder
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStoreRepositories,
		),
	)
}

type storeParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Client *supabase.Client
}

type storeRepositories struct {
	fx.Out

	UserCarts repository.UserCartRepository
	Wishlist  repository.WishlistRepository
	Waitlist  repository.WaitlistRepository
}

// newStoreRepositories backs the remote tables with PostgREST, or with a
// direct database connection when store.driver is postgres.
func newStoreRepositories(params storeParams) (storeRepositories, error) {
	if params.Config.Store.Driver != config.StoreDriverPostgres {
		return storeRepositories{
			UserCarts: supabase.NewUserCartRepository(params.Client),
			Wishlist:  supabase.NewWishlistRepository(params.Client),
			Waitlist:  supabase.NewWaitlistRepository(params.Client),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return storeRepositories{}, err
	}

	return storeRepositories{
		UserCarts: postgres.NewUserCartRepository(db),
		Wishlist:  postgres.NewWishlistRepository(db),
		Waitlist:  postgres.NewWaitlistRepository(db),
	}, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			shopify.New,
			supabase.NewAuthService,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewWaitlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewWaitlistHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func subscribeIdentityListeners(holder *session.Holder, cart usecase.CartUsecase, wishlist usecase.WishlistUsecase) {
	holder.Subscribe(cart.OnIdentityChange)
	holder.Subscribe(wishlist.OnIdentityChange)
}

type syncParams struct {
	fx.In
	fx.Lifecycle

	Session usecase.SessionUsecase
	Cart    usecase.CartUsecase
	Logger  *slog.Logger
}

// syncOnStart restores the stored session and prepares the cart before the
// server accepts traffic. Failures leave the app usable: the session stays
// anonymous and the cart initializes lazily on first use.
func syncOnStart(params syncParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.StartupSyncTimeout)
			defer cancel()

			identity, err := params.Session.Restore(ctx)
			if err != nil {
				params.Logger.Warn("Failed to restore session", slog.Any("error", err))
			} else if identity != nil {
				params.Logger.Info("Session restored", slog.String("user_id", identity.UserID.String()))
			}

			if err := params.Cart.Init(ctx); err != nil {
				params.Logger.Warn("Failed to initialize cart", slog.Any("error", err))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
