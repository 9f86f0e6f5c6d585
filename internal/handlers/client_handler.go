package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RosaneTech/crm-agenda/internal/domain/crm"
	"github.com/RosaneTech/crm-agenda/internal/httperr"
	"github.com/RosaneTech/crm-agenda/internal/middleware"
)

type ClientHandler struct {
	clients crm.ClientRepository
	notes   crm.NoteRepository
}

func NewClientHandler(
	clients crm.ClientRepository,
	notes crm.NoteRepository,
) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		notes:   notes,
	}
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := c.Query("q")

	clients, err := h.clients.List(c.Request.Context(), query)
	if err != nil {
		middleware.Flash(c, "Erro ao listar clientes.")
	}

	render(c, http.StatusOK, "clients", gin.H{
		"Clients": clients,
		"Query":   query,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) NewForm(c *gin.Context) {
	render(c, http.StatusOK, "client_form", nil)
}

func (h *ClientHandler) Create(c *gin.Context) {
	_, err := h.clients.Create(
		c.Request.Context(),
		c.PostForm("name"),
		c.PostForm("phone"),
		c.PostForm("email"),
	)
	if err != nil {
		if httperr.IsValidation(err) {
			middleware.Flash(c, "Informe o nome do cliente.")
		} else {
			middleware.Flash(c, "Erro ao salvar o cliente.")
		}
		c.Redirect(http.StatusSeeOther, "/clients/new")
		return
	}

	middleware.Flash(c, "Cliente cadastrado.")
	c.Redirect(http.StatusSeeOther, "/clients")
}

// ======================================================
// DETAIL + NOTES
// ======================================================

func (h *ClientHandler) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.Flash(c, "Cliente não encontrado.")
		c.Redirect(http.StatusSeeOther, "/clients")
		return
	}

	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		if httperr.IsNotFound(err) {
			middleware.Flash(c, "Cliente não encontrado.")
		} else {
			middleware.Flash(c, "Erro ao carregar o cliente.")
		}
		c.Redirect(http.StatusSeeOther, "/clients")
		return
	}

	notes, err := h.notes.ListForClient(c.Request.Context(), id)
	if err != nil {
		middleware.Flash(c, "Erro ao carregar as observações.")
	}

	render(c, http.StatusOK, "client_detail", gin.H{
		"Client": client,
		"Notes":  notes,
	})
}

func (h *ClientHandler) AddNote(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.Flash(c, "Cliente não encontrado.")
		c.Redirect(http.StatusSeeOther, "/clients")
		return
	}

	_, err = h.notes.Create(c.Request.Context(), id, c.PostForm("content"))
	if err != nil {
		switch {
		case httperr.IsValidation(err):
			middleware.Flash(c, "Escreva a observação.")
			c.Redirect(http.StatusSeeOther, "/clients/"+c.Param("id"))
		case httperr.IsNotFound(err):
			middleware.Flash(c, "Cliente não encontrado.")
			c.Redirect(http.StatusSeeOther, "/clients")
		default:
			middleware.Flash(c, "Erro ao registrar a observação.")
			c.Redirect(http.StatusSeeOther, "/clients/"+c.Param("id"))
		}
		return
	}

	middleware.Flash(c, "Observação registrada.")
	c.Redirect(http.StatusSeeOther, "/clients/"+c.Param("id"))
}
