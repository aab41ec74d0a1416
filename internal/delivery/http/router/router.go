// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"botany/internal/delivery/http/middleware"
	"botany/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PlantHandler   *handler.PlantHandler
	GardenHandler  *handler.GardenHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	plantHandler   *handler.PlantHandler
	gardenHandler  *handler.GardenHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		plantHandler:   params.PlantHandler,
		gardenHandler:  params.GardenHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/fence", r.userHandler.SetFence)
	}

	// The caller's own plant
	plantGroup := e.Group("/plant")
	plantGroup.Use(r.authMiddleware.Authenticate)
	{
		plantGroup.GET("", r.plantHandler.GetPlant)
		plantGroup.POST("/water", r.plantHandler.Water)
		plantGroup.POST("/fertilize", r.plantHandler.Fertilize)
		plantGroup.POST("/shake", r.plantHandler.Shake)
		plantGroup.POST("/petal", r.plantHandler.PickPetal)
		plantGroup.POST("/harvest", r.plantHandler.Harvest)
		plantGroup.POST("/cheer", r.plantHandler.UseChristmasCheer)
		plantGroup.PUT("/name", r.plantHandler.Rename)
	}

	// The community garden and visits to other users' plants
	gardenGroup := e.Group("/garden")
	gardenGroup.Use(r.authMiddleware.Authenticate)
	{
		gardenGroup.GET("", r.gardenHandler.ListGarden)
		gardenGroup.POST("/:id/water", r.plantHandler.VisitWater)
		gardenGroup.POST("/:id/fertilize", r.plantHandler.VisitFertilize)
		gardenGroup.POST("/:id/petal", r.plantHandler.VisitPickPetal)
	}
}
