package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	goredis "github.com/redis/go-redis/v9"

	"safepath/internal/handler"
	"safepath/internal/middleware"
	"safepath/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler    *handler.UserHandler
	FareHandler    *handler.FareHandler
	PlacesHandler  *handler.PlacesHandler
	WizardHandler  *handler.WizardHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
	SessionStore   redis.SessionStoreInterface
	RedisClient    *goredis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	auth := middleware.Auth(deps.SessionStore)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.POST("/login", deps.UserHandler.Login)
			users.POST("/logout", auth, deps.UserHandler.Logout)
			users.GET("/me", auth, deps.UserHandler.Me)
			users.PUT("/me", auth, deps.UserHandler.UpdateProfile)
		}

		// Fare estimate, open to unauthenticated clients.
		v1.POST("/fare/estimate", deps.FareHandler.Estimate)

		// Location lookup routes.
		places := v1.Group("/places")
		{
			places.GET("/search", deps.PlacesHandler.Search)
			places.GET("/reverse", deps.PlacesHandler.Reverse)
		}
		v1.GET("/hospitals", deps.PlacesHandler.Hospitals)

		// Booking wizard routes. The draft is keyed by the session user.
		wizard := v1.Group("/wizard", auth)
		{
			wizard.POST("/start", deps.WizardHandler.Start)
			wizard.PUT("/addresses", deps.WizardHandler.SetAddresses)
			wizard.PUT("/schedule", deps.WizardHandler.SetSchedule)
			wizard.PUT("/passenger", deps.WizardHandler.SetPassenger)
			wizard.GET("/summary", deps.WizardHandler.Summary)
			wizard.POST("/confirm", deps.WizardHandler.Confirm)
		}

		// Booking routes.
		bookings := v1.Group("/bookings", auth)
		{
			bookings.GET("", deps.BookingHandler.List)
			bookings.GET("/:id", deps.BookingHandler.Get)
			bookings.GET("/:id/receipt", deps.BookingHandler.Receipt)
			bookings.POST("/:id/cancel", deps.BookingHandler.Cancel)
			bookings.POST("/:id/complete", deps.BookingHandler.Complete)
		}

		// Payment routes.
		payments := v1.Group("/payments", auth)
		{
			payments.GET("/:id", deps.PaymentHandler.Get)
			payments.POST("/:id/paid", deps.PaymentHandler.MarkPaid)
		}
	}

	return router
}
