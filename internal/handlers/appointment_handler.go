package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RosaneTech/crm-agenda/internal/domain/crm"
	"github.com/RosaneTech/crm-agenda/internal/httperr"
	"github.com/RosaneTech/crm-agenda/internal/middleware"
)

type AppointmentHandler struct {
	appointments crm.AppointmentRepository
	clients      crm.ClientRepository
}

func NewAppointmentHandler(
	appointments crm.AppointmentRepository,
	clients crm.ClientRepository,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		clients:      clients,
	}
}

// ======================================================
// FORM INPUT
// ======================================================

type appointmentForm struct {
	ClientID    uint
	StartsAt    time.Time
	DurationMin int
	Status      string
	Notes       string
}

// bindAppointmentForm lê o formulário. Cliente ou horário ausentes
// viram zero e caem na validação do repositório; horário ilegível
// devolve erro para reexibir o formulário. Duração inválida degrada
// para 60 em silêncio.
func bindAppointmentForm(c *gin.Context) (appointmentForm, error) {
	var f appointmentForm

	f.ClientID, _ = parseID(c.PostForm("client_id"))

	if raw := strings.TrimSpace(c.PostForm("starts_at")); raw != "" {
		t, err := parseMinute(raw)
		if err != nil {
			return f, err
		}
		f.StartsAt = t
	}

	f.DurationMin = parseDurationMin(c.PostForm("duration_min"))
	f.Status = strings.TrimSpace(c.PostForm("status"))
	f.Notes = strings.TrimSpace(c.PostForm("notes"))

	return f, nil
}

// ======================================================
// LIST / FILTER
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	aps, err := h.appointments.ListInRange(
		c.Request.Context(),
		parseDate(fromStr),
		parseDate(toStr),
	)
	if err != nil {
		middleware.Flash(c, "Erro ao listar as consultas.")
	}

	render(c, http.StatusOK, "appointments", gin.H{
		"Appointments": aps,
		"From":         fromStr,
		"To":           toStr,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) NewForm(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), "")
	if err != nil {
		middleware.Flash(c, "Erro ao listar clientes.")
	}

	selected, _ := parseID(c.Query("client_id"))

	render(c, http.StatusOK, "appointment_form", gin.H{
		"Clients":  clients,
		"Selected": selected,
		"Statuses": crm.Statuses(),
	})
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	f, err := bindAppointmentForm(c)
	if err != nil {
		middleware.Flash(c, "Data ou hora inválida.")
		c.Redirect(http.StatusSeeOther, "/appointments/new")
		return
	}

	_, err = h.appointments.Create(
		c.Request.Context(),
		f.ClientID,
		f.StartsAt,
		f.DurationMin,
		f.Status,
		f.Notes,
	)
	if err != nil {
		switch {
		case httperr.IsValidation(err):
			middleware.Flash(c, "Escolha o cliente e o horário.")
		case httperr.IsNotFound(err):
			middleware.Flash(c, "Cliente não encontrado.")
		default:
			middleware.Flash(c, "Erro ao agendar a consulta.")
		}
		c.Redirect(http.StatusSeeOther, "/appointments/new")
		return
	}

	middleware.Flash(c, "Consulta agendada.")
	c.Redirect(http.StatusSeeOther, "/appointments")
}

// ======================================================
// EDIT
// ======================================================

func (h *AppointmentHandler) EditForm(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.Flash(c, "Consulta não encontrada.")
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	ap, err := h.appointments.Get(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			middleware.Flash(c, "Consulta não encontrada.")
		} else {
			middleware.Flash(c, "Erro ao carregar a consulta.")
		}
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	render(c, http.StatusOK, "appointment_edit", gin.H{
		"Appointment": ap,
		"Statuses":    crm.Statuses(),
	})
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.Flash(c, "Consulta não encontrada.")
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	editPath := "/appointments/" + c.Param("id") + "/edit"

	f, err := bindAppointmentForm(c)
	if err != nil {
		middleware.Flash(c, "Data ou hora inválida.")
		c.Redirect(http.StatusSeeOther, editPath)
		return
	}

	err = h.appointments.Update(
		c.Request.Context(),
		id,
		f.StartsAt,
		f.DurationMin,
		f.Status,
		f.Notes,
	)
	if err != nil {
		switch {
		case httperr.IsValidation(err):
			middleware.Flash(c, "Informe o horário.")
			c.Redirect(http.StatusSeeOther, editPath)
		case httperr.IsNotFound(err):
			middleware.Flash(c, "Consulta não encontrada.")
			c.Redirect(http.StatusSeeOther, "/appointments")
		default:
			middleware.Flash(c, "Erro ao atualizar a consulta.")
			c.Redirect(http.StatusSeeOther, editPath)
		}
		return
	}

	middleware.Flash(c, "Consulta atualizada.")
	c.Redirect(http.StatusSeeOther, "/appointments")
}
