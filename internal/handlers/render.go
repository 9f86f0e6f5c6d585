package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/RosaneTech/crm-agenda/internal/middleware"
)

// render injeta as mensagens flash pendentes em toda página.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = middleware.Flashes(c)
	c.HTML(status, name, data)
}
