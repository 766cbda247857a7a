package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

// renderTemplate renders one page inside the shared layout. Pages define a
// "content" block; layout.html provides the chrome.
func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	layout, err := templatesFS.ReadFile("templates/layout.html")
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	t := template.Must(template.New("layout").Parse(string(layout)))
	t = template.Must(t.Parse(string(content)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("template execute", "template", name, "error", err)
	}
}
