// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scout/config"
	"scout/internal/delivery/api/middleware"
	"scout/internal/delivery/api/router/handler"
	"scout/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LookupHandler  *handler.LookupHandler
	AccountHandler *handler.AccountHandler
	CouponHandler  *handler.CouponHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	lookupHandler  *handler.LookupHandler
	accountHandler *handler.AccountHandler
	couponHandler  *handler.CouponHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		lookupHandler:  params.LookupHandler,
		accountHandler: params.AccountHandler,
		couponHandler:  params.CouponHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.POST("/lookups", r.lookupHandler.BatchLookup)

	accountGroup := apiV1.Group("/account")
	{
		accountGroup.GET("", r.accountHandler.GetAccount)
		accountGroup.PUT("/preference", r.accountHandler.UpdatePreference)
	}

	apiV1.POST("/coupons/redeem", r.couponHandler.RedeemCoupon)

	// Coupon administration (requires admin role)
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/coupons", r.couponHandler.MintCoupons)
		adminGroup.GET("/coupons/:code/qr", r.couponHandler.GetCouponQR)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
