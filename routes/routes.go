package routes

import (
	"net/http"
	"time"

	"trimly/handlers"
	"trimly/middleware"
	"trimly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the route table needs.
type HandlerBundle struct {
	Chat         *handlers.ChatHandler
	Appointments *handlers.AppointmentHandler
	Services     *handlers.ServiceHandler
	Clients      *handlers.ClientHandler
	Profile      *handlers.ProfileHandler
	Reports      *handlers.ReportHandler
}

// RegisterShopRoutes registers the staff-facing schedule endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *HandlerBundle) {
	shop := r.Group("/api/shop")
	{
		shop.Use(middleware.JWTAuthShopMiddleware())

		shop.GET("/appointments", hb.Appointments.List)
		shop.POST("/appointments", hb.Appointments.Create)
		shop.PUT("/appointments/:id", hb.Appointments.Update)
		shop.DELETE("/appointments/:id", hb.Appointments.Cancel)
		shop.GET("/appointments/:id/logs", hb.Appointments.Logs)

		shop.GET("/services", hb.Services.List)
		shop.POST("/services", hb.Services.Create)
		shop.PUT("/services/:id", hb.Services.Update)
		shop.DELETE("/services/:id", hb.Services.Deactivate)

		shop.GET("/clients", hb.Clients.List)
		shop.POST("/clients", hb.Clients.Create)

		shop.GET("/profile", hb.Profile.Get)
		shop.POST("/profile", hb.Profile.Save)

		shop.GET("/reports", hb.Reports.Get)

		shop.POST("/chat", hb.Chat.Chat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShopRoutes(r, hb)
	RegisterHealthRoute(r)
}
