package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega as páginas embutidas no binário, com os helpers
// de formatação de data usados nelas.
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(template.FuncMap{
			"fmtDateTime": func(t time.Time) string {
				return t.Format("02/01/2006 15:04")
			},
			"fmtInput": func(t time.Time) string {
				return t.Format("2006-01-02T15:04")
			},
		}).ParseFS(templatesFS, "templates/*.html"),
	)
}
