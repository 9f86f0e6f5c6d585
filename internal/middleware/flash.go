package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "crm_session"

// Sessions instala a sessão de cookie assinado que carrega as
// mensagens flash de uma requisição para a seguinte.
func Sessions(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
	})
	return sessions.Sessions(sessionName, store)
}

// Flash registra uma mensagem exibida uma única vez, na próxima
// página renderizada.
func Flash(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	_ = s.Save()
}

// Flashes devolve e apaga as mensagens pendentes.
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() remove da sessão; o Save persiste a limpeza.
	_ = s.Save()

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
