// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	WaitlistHandler   *handler.WaitlistHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	wishlistHandler   *handler.WishlistHandler
	waitlistHandler   *handler.WaitlistHandler
	sessionMiddleware *middleware.SessionMiddleware
	metrics           *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		wishlistHandler:   params.WishlistHandler,
		waitlistHandler:   params.WaitlistHandler,
		sessionMiddleware: params.SessionMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET(r.cfg.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	requireIdentity := r.sessionMiddleware.RequireIdentity

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.GET("/oauth/:provider", r.authHandler.OAuthStart)
		authGroup.POST("/oauth/callback", r.authHandler.OAuthCallback)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
		authGroup.PUT("/password", r.authHandler.UpdatePassword, requireIdentity)
	}

	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:handle", r.catalogHandler.GetProduct)
	e.GET("/search", r.catalogHandler.Search)

	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/lines", r.cartHandler.AddLine)
		cartGroup.PATCH("/lines", r.cartHandler.ChangeLine)
		cartGroup.DELETE("/lines", r.cartHandler.RemoveLines)
		cartGroup.GET("/count", r.cartHandler.Count)
		cartGroup.GET("/checkout", r.cartHandler.Checkout)
		cartGroup.GET("/checkout/qr", r.cartHandler.CheckoutQRCode)
	}

	wishlistGroup := e.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.GET("/liked", r.wishlistHandler.Liked)
		wishlistGroup.POST("", r.wishlistHandler.Add, requireIdentity)
		wishlistGroup.POST("/toggle", r.wishlistHandler.Toggle, requireIdentity)
		wishlistGroup.DELETE("", r.wishlistHandler.Remove, requireIdentity)
	}

	waitlistGroup := e.Group("/waitlist")
	{
		waitlistGroup.POST("", r.waitlistHandler.Join)
		waitlistGroup.GET("/count", r.waitlistHandler.Count)
	}
}
