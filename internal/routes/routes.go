package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RosaneTech/crm-agenda/internal/config"
	"github.com/RosaneTech/crm-agenda/internal/handlers"
	infraRepo "github.com/RosaneTech/crm-agenda/internal/infra/repository"
	"github.com/RosaneTech/crm-agenda/internal/middleware"
	"github.com/RosaneTech/crm-agenda/internal/web"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Sessions(cfg.SessionSecret))
	r.SetHTMLTemplate(web.Templates())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	noteRepo := infraRepo.NewNoteGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	homeHandler := handlers.NewHomeHandler(appointmentRepo)
	clientHandler := handlers.NewClientHandler(clientRepo, noteRepo)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, clientRepo)

	// ======================================================
	// ROTAS (HTML)
	// ======================================================
	r.GET("/", homeHandler.Overview)

	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.GET("/new", clientHandler.NewForm)
		clients.POST("/new", clientHandler.Create)
		clients.GET("/:id", clientHandler.Detail)
		clients.POST("/:id", clientHandler.AddNote)
	}

	appointments := r.Group("/appointments")
	{
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/new", appointmentHandler.NewForm)
		appointments.POST("/new", appointmentHandler.Create)
		appointments.GET("/:id/edit", appointmentHandler.EditForm)
		appointments.POST("/:id/edit", appointmentHandler.Update)
	}
}
