package routes

import (
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/handler"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything SetupRoutes wires into the router
type Handlers struct {
	Auth      *handler.AuthHandler
	Booking   *handler.BookingHandler
	Report    *handler.ReportHandler
	Workplace *handler.WorkplaceHandler
	Health    *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	sessions *session.Manager,
	revocations session.RevocationStore,
	logger coreport.Logger,
) {
	// Unauthenticated surface
	router.GET("/healthz", handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
	}

	// Everything below requires a valid, unrevoked session token
	authenticated := router.Group("/")
	authenticated.Use(middleware.Auth(sessions, revocations, logger))
	{
		authenticated.POST("/auth/logout", handlers.Auth.Logout)
		authenticated.GET("/auth/me", handlers.Auth.Me)
		authenticated.PUT("/auth/password", handlers.Auth.ChangePassword)
		authenticated.PUT("/auth/location", handlers.Auth.SetDefaultLocation)

		authenticated.POST("/bookings", handlers.Booking.Reserve)
		authenticated.GET("/bookings", handlers.Booking.MyBookings)
		authenticated.DELETE("/bookings/upcoming", handlers.Booking.CancelUpcoming)
		authenticated.POST("/bookings/cancel-range", handlers.Booking.CancelRange)
		authenticated.DELETE("/bookings/:bookingId", handlers.Booking.Cancel)

		authenticated.GET("/schedule", handlers.Booking.Schedule)

		authenticated.GET("/workplaces", handlers.Workplace.List)
		authenticated.GET("/workplaces/:placeId/availability", handlers.Booking.Availability)
		authenticated.GET("/locations", handlers.Workplace.Locations)

		reportRoutes := authenticated.Group("/reports")
		{
			reportRoutes.GET("/users", handlers.Report.UserStatistics)
			reportRoutes.GET("/weekdays", handlers.Report.WeekdayDistribution)
			reportRoutes.GET("/locations", handlers.Report.LocationDistribution)
			reportRoutes.GET("/hours", handlers.Report.HourDistribution)
			reportRoutes.GET("/occupancy", handlers.Report.Occupancy)
			reportRoutes.GET("/export", handlers.Report.Export)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
