// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"landhub/internal/delivery/http/middleware"
	"landhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AdminHandler       *handler.AdminHandler
	CompanyHandler     *handler.CompanyHandler
	LandHandler        *handler.LandHandler
	RequirementHandler *handler.RequirementHandler
	UploadHandler      *handler.UploadHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler       *handler.AdminHandler
	companyHandler     *handler.CompanyHandler
	landHandler        *handler.LandHandler
	requirementHandler *handler.RequirementHandler
	uploadHandler      *handler.UploadHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler:       params.AdminHandler,
		companyHandler:     params.CompanyHandler,
		landHandler:        params.LandHandler,
		requirementHandler: params.RequirementHandler,
		uploadHandler:      params.UploadHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutation except the inquiry form requires an admin
// session token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	guard := r.authMiddleware.Authenticate

	api.POST("/admin/login", r.adminHandler.Login)

	companyGroup := api.Group("/companies")
	{
		companyGroup.GET("", r.companyHandler.List)
		companyGroup.POST("", r.companyHandler.Create, guard)
		companyGroup.PUT("", r.companyHandler.Update, guard)
		companyGroup.DELETE("", r.companyHandler.Delete, guard)
	}

	landGroup := api.Group("/lands")
	{
		landGroup.GET("", r.landHandler.List)
		landGroup.GET("/:id/contact-qr", r.landHandler.ContactQR)
		landGroup.POST("", r.landHandler.Create, guard)
		landGroup.PUT("", r.landHandler.Update, guard)
		landGroup.DELETE("", r.landHandler.Delete, guard)
	}

	requirementGroup := api.Group("/requirements")
	{
		requirementGroup.GET("", r.requirementHandler.List, guard)
		requirementGroup.POST("", r.requirementHandler.Create)
		requirementGroup.PUT("", r.requirementHandler.UpdateStatus, guard)
	}

	api.POST("/upload", r.uploadHandler.Upload, guard)
}
