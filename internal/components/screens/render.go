package screens

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/Dhayanand17/AQI/internal/shared/assets"
	"github.com/Dhayanand17/AQI/templates"
)

type (
	loginData struct {
		Background template.URL
		Error      string
		Notice     string
	}

	signupData struct {
		Background template.URL
		Warning    string
		Error      string
	}

	dashboardData struct {
		Background template.URL
		ReportURL  template.URL
	}
)

// background returns the memoized data URI for the configured image.
func (r *Router) background(req *http.Request) template.URL {
	return template.URL(assets.DataURI(r.cfg.BackgroundImage, *hlog.FromRequest(req)))
}

func (r *Router) render(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	logger := hlog.FromRequest(req)

	tmpl, err := template.ParseFS(templates.FS, name)
	if err != nil {
		logger.Error().Err(err).Str("template", name).Msg("Failed to parse template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		logger.Error().Err(err).Str("template", name).Msg("Failed to execute template")
	}
}

func (r *Router) renderLogin(w http.ResponseWriter, req *http.Request, status int, errMsg, notice string) {
	r.render(w, req, status, "login.html", loginData{
		Background: r.background(req),
		Error:      errMsg,
		Notice:     notice,
	})
}

func (r *Router) renderSignup(w http.ResponseWriter, req *http.Request, status int, warning, errMsg string) {
	r.render(w, req, status, "signup.html", signupData{
		Background: r.background(req),
		Warning:    warning,
		Error:      errMsg,
	})
}

func (r *Router) renderDashboard(w http.ResponseWriter, req *http.Request) {
	r.render(w, req, http.StatusOK, "dashboard.html", dashboardData{
		Background: r.background(req),
		ReportURL:  template.URL(r.cfg.ReportURL),
	})
}
