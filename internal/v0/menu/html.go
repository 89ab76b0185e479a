package menu

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

var widgetTmpl = template.Must(template.ParseFS(templateFS, "templates/widget.html"))

// WriteHTML renders the widget page for a view. All text goes through html/template escaping.
func WriteHTML(w io.Writer, v View) error {
	return widgetTmpl.Execute(w, v)
}
