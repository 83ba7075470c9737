package routes

import (
	"net/http"
	"time"

	"servicehub/config"
	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/models"
	"servicehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", hb.Auth.Register)
		auth.POST("/login", hb.Auth.Login)
	}

	profile := r.Group("/api/user")
	{
		profile.Use(middleware.JWTAuthMiddleware(false))
		profile.GET("/profile", hb.Auth.GetProfile)
		profile.PATCH("/profile", hb.Auth.UpdateProfile)
	}
}

// RegisterCatalogRoutes registers the public catalog and review endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Services.ListServices)
		api.GET("/services/:id", hb.Services.GetService)

		// Reviews accept an optional token; anonymous reviews get default identity.
		api.GET("/reviews", hb.Reviews.ListReviews)
		api.POST("/reviews", middleware.JWTAuthMiddleware(true), hb.Reviews.CreateReview)
	}
}

// RegisterQuotationRoutes registers the customer side of quotations.
func RegisterQuotationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	q := r.Group("/api/quotations")
	{
		q.Use(middleware.JWTAuthMiddleware(false))
		q.GET("", hb.Quotations.ListCustomerQuotations)
		q.POST("", hb.Quotations.CreateQuotation)
		q.GET("/:id", hb.Quotations.GetQuotation)
		q.PATCH("/:id/cancel", hb.Quotations.CancelQuotation)
		q.PATCH("/:id/complete", hb.Quotations.CompleteQuotation)
	}
}

// RegisterCustomerRoutes registers bookings, saved services and stats.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	customer := r.Group("/api/customer")
	{
		customer.Use(middleware.JWTAuthMiddleware(false))
		customer.GET("/bookings", hb.Customer.ListBookings)
		customer.POST("/bookings/:id/pay", hb.Customer.PayBooking)
		customer.GET("/saved-services", hb.Customer.ListSavedServices)
		customer.POST("/saved-services", hb.Customer.SaveService)
		customer.DELETE("/saved-services/:id", hb.Customer.RemoveSavedService)
		customer.GET("/stats", hb.Customer.Stats)
		customer.GET("/activity", hb.Customer.Activity)
		customer.GET("/recommendations", hb.Customer.Recommendations)
	}
}

// RegisterProviderRoutes registers provider-only endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	provider := r.Group("/api/provider")
	{
		provider.Use(middleware.JWTAuthMiddleware(false), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))

		provider.GET("/services", hb.Services.ListProviderServices)
		provider.POST("/services", hb.Services.CreateService)
		provider.GET("/services/:id", hb.Services.GetProviderService)
		provider.PATCH("/services/:id", hb.Services.UpdateService)
		provider.DELETE("/services/:id", hb.Services.DeleteService)

		provider.GET("/quotations", hb.Quotations.ListProviderQuotations)
		provider.POST("/quotations/:id/respond", hb.Quotations.RespondQuotation)
		provider.POST("/quotations/:id/reject", hb.Quotations.RejectQuotation)

		provider.GET("/earnings", hb.Provider.GetEarnings)
		provider.POST("/earnings/pay", hb.Provider.RequestPayout)
		provider.GET("/stats", hb.Provider.Stats)
	}
}

// RegisterAdminRoutes registers the platform oversight endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("/users", hb.Admin.ListUsers)
		admin.PATCH("/users/:id/:action", hb.Admin.UserAction)
		admin.GET("/services", hb.Admin.ListServices)
		admin.PATCH("/services/:id/:action", hb.Admin.ServiceAction)
		admin.GET("/quotations", hb.Admin.ListQuotations)
		admin.GET("/stats", hb.Admin.Stats)
	}
}

// RegisterNotificationRoutes registers the in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	n := r.Group("/api/notifications")
	{
		n.Use(middleware.JWTAuthMiddleware(false))
		n.GET("", hb.Notifications.List)
		n.PATCH("/read-all", hb.Notifications.MarkAllRead)
		n.PATCH("/:id/read", hb.Notifications.MarkRead)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints. The
// health answer is the last snapshot taken by the health monitor.
func RegisterHealthRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, reg *prometheus.Registry) {
	r.Use(
		utils.ErrorHandler(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.NewMetrics(reg).Handler(),
		middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin),
		cors.New(cors.Config{
			AllowOrigins:     config.AllowedOrigins(),
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
			AllowCredentials: !allowsAnyOrigin(),
			MaxAge:           12 * time.Hour,
		}),
	)

	RegisterHealthRoute(r, reg)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterQuotationRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// allowsAnyOrigin reports whether CORS is open to every origin. gin-contrib/cors
// rejects a wildcard origin combined with credentials.
func allowsAnyOrigin() bool {
	for _, o := range config.AllowedOrigins() {
		if o == "*" {
			return true
		}
	}
	return false
}
