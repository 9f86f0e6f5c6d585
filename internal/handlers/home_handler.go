package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosaneTech/crm-agenda/internal/domain/crm"
	"github.com/RosaneTech/crm-agenda/internal/middleware"
)

type HomeHandler struct {
	appointments crm.AppointmentRepository
}

func NewHomeHandler(appointments crm.AppointmentRepository) *HomeHandler {
	return &HomeHandler{appointments: appointments}
}

// Overview mostra as consultas dos próximos 7 dias.
func (h *HomeHandler) Overview(c *gin.Context) {
	aps, err := h.appointments.ListUpcoming(c.Request.Context(), 7)
	if err != nil {
		middleware.Flash(c, "Erro ao carregar a agenda.")
	}

	render(c, http.StatusOK, "home", gin.H{
		"Appointments": aps,
	})
}
