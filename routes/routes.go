package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers plus the two auth middleware flavors
// the routes mount.
type HandlerBundle struct {
	Auth         *handlers.AuthHandler
	Catalog      *handlers.CatalogHandler
	Wizard       *handlers.WizardHandler
	Booking      *handlers.BookingHandler
	AI           *handlers.AIHandler
	Appointments *handlers.AppointmentHandler

	RequiredAuth gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
}

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterCatalogRoutes registers public reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/specialties", hb.Catalog.ListSpecialties)
		api.GET("/doctors", hb.Catalog.ListDoctors)
		api.GET("/doctors/:id", hb.Catalog.GetDoctor)
		api.GET("/doctors/:id/slots", hb.Catalog.GetDoctorSlots)
	}
}

// RegisterWizardRoutes registers the booking flow endpoints. Browsing the
// wizard is open; confirming runs under optional auth so the submission
// service can express the login/role redirect chain itself.
func RegisterWizardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", hb.OptionalAuth, hb.Wizard.StartSession)
		api.GET("/session/:sessionID", hb.Wizard.GetSession)
		api.PUT("/session/:sessionID/specialty", hb.Wizard.SelectSpecialty)
		api.PUT("/session/:sessionID/doctor", hb.Wizard.SelectDoctor)
		api.PUT("/session/:sessionID/schedule", hb.Wizard.SelectSchedule)
		api.PUT("/session/:sessionID/back", hb.Wizard.Back)
		api.POST("/session/:sessionID/confirm", hb.OptionalAuth, hb.Booking.ConfirmBooking)
		api.DELETE("/session/:sessionID", hb.Wizard.CancelSession)
	}
}

// RegisterAIRoutes registers the symptom suggestion endpoint.
func RegisterAIRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/suggest", hb.AI.Suggest)
	}
}

// RegisterAppointmentRoutes registers the dashboard endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(hb.RequiredAuth)
	{
		api.GET("/my", middleware.RequireRole(models.RolePatient), hb.Appointments.ListMine)
		api.GET("/doctor", middleware.RequireRole(models.RoleDoctor), hb.Appointments.ListForDoctor)
		api.PATCH("/:id/status", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin, models.RoleSuperAdmin), hb.Appointments.UpdateStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Medibook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
