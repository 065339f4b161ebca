// Package screens selects and renders exactly one of the three screens —
// Login, Sign-Up, Dashboard — from the session flags, and wires the form
// actions back into the session and the credential store.
package screens

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/Dhayanand17/AQI/internal/components/users"
	"github.com/Dhayanand17/AQI/internal/session"
	"github.com/Dhayanand17/AQI/internal/shared/config"
	"github.com/Dhayanand17/AQI/internal/shared/middleware"
)

const (
	msgInvalidCredentials = "Invalid username or password!"
	msgMissingFields      = "Please fill out all fields."
	msgPasswordMismatch   = "Passwords do not match!"
	msgUsernameTaken      = "Username already exists! Please choose a different one."
	msgAccountCreated     = "Account created successfully! Please log in."
	msgServiceUnavailable = "Service unavailable. Please try again later."
)

type (
	Router struct {
		service  users.Servicer
		sessions *session.Manager
		cfg      *config.Config
	}
)

func NewRouter(service users.Servicer, sessions *session.Manager, cfg *config.Config) chi.Router {
	router := &Router{service: service, sessions: sessions, cfg: cfg}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.NewSessionMiddleware(r.sessions))

	router.Get("/", r.Index)
	router.Post("/login", r.HandleLogin)
	router.Post("/login/signup", r.HandleShowSignup)
	router.Post("/signup", r.HandleSignup)
	router.Post("/signup/back", r.HandleBackToLogin)
	router.Post("/logout", r.HandleLogout)

	return router
}

// Index evaluates the session top to bottom and renders exactly one screen.
// Every action redirects back here, so each request is a full re-evaluation.
func (r *Router) Index(w http.ResponseWriter, req *http.Request) {
	sess := middleware.GetSession(req.Context())

	switch {
	case sess.Authenticated:
		r.renderDashboard(w, req)
	case sess.ShowLogin:
		var notice string
		if req.URL.Query().Get("created") == "1" {
			notice = msgAccountCreated
		}
		r.renderLogin(w, req, http.StatusOK, "", notice)
	default:
		r.renderSignup(w, req, http.StatusOK, "", "")
	}
}

func (r *Router) HandleLogin(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	username := req.FormValue("username")
	password := req.FormValue("password")

	logger.Debug().Str("username", username).Msg("Login attempt")

	user, err := r.service.ValidateCredentials(ctx, username, password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		logger.Warn().Str("username", username).Msg("Login failed: invalid credentials")
		r.renderLogin(w, req, http.StatusUnauthorized, msgInvalidCredentials, "")
		return
	}
	if err != nil {
		// Storage failure, never reported as bad credentials.
		logger.Error().Err(err).Str("username", username).Msg("Login failed: credential store error")
		r.renderLogin(w, req, http.StatusServiceUnavailable, msgServiceUnavailable, "")
		return
	}

	sess := middleware.GetSession(ctx)
	sess.LogIn(user.Username)
	if err := r.sessions.Save(w, sess); err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Login failed: could not set cookie")
		r.renderLogin(w, req, http.StatusInternalServerError, msgServiceUnavailable, "")
		return
	}

	logger.Debug().Str("username", username).Str("session_id", sess.ID.String()).Msg("Login successful")
	http.Redirect(w, req, "/", http.StatusSeeOther)
}

func (r *Router) HandleSignup(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	in := users.SignUpIn{
		Username:        req.FormValue("username"),
		Password:        req.FormValue("password"),
		ConfirmPassword: req.FormValue("confirm_password"),
	}

	err := r.service.SignUp(ctx, in)
	switch {
	case errors.Is(err, users.ErrMissingFields):
		r.renderSignup(w, req, http.StatusBadRequest, msgMissingFields, "")
	case errors.Is(err, users.ErrPasswordMismatch):
		r.renderSignup(w, req, http.StatusBadRequest, "", msgPasswordMismatch)
	case errors.Is(err, users.ErrUsernameTaken):
		logger.Debug().Str("username", in.Username).Msg("Sign-up rejected: username taken")
		r.renderSignup(w, req, http.StatusConflict, "", msgUsernameTaken)
	case err != nil:
		logger.Error().Err(err).Str("username", in.Username).Msg("Sign-up failed: credential store error")
		r.renderSignup(w, req, http.StatusServiceUnavailable, "", msgServiceUnavailable)
	default:
		// Account created. Back to the login screen, no auto-login.
		sess := middleware.GetSession(ctx)
		sess.ToggleToLogin()
		if err := r.sessions.Save(w, sess); err != nil {
			logger.Error().Err(err).Msg("Could not set cookie after sign-up")
		}
		logger.Debug().Str("username", in.Username).Msg("Account created")
		http.Redirect(w, req, "/?created=1", http.StatusSeeOther)
	}
}

func (r *Router) HandleShowSignup(w http.ResponseWriter, req *http.Request) {
	r.toggle(w, req, (*session.Session).ToggleToSignup)
}

func (r *Router) HandleBackToLogin(w http.ResponseWriter, req *http.Request) {
	r.toggle(w, req, (*session.Session).ToggleToLogin)
}

// toggle flips the login/sign-up navigation flag without touching the
// authenticated state.
func (r *Router) toggle(w http.ResponseWriter, req *http.Request, flip func(*session.Session)) {
	sess := middleware.GetSession(req.Context())
	flip(sess)
	if err := r.sessions.Save(w, sess); err != nil {
		hlog.FromRequest(req).Error().Err(err).Msg("Could not set cookie")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, req, "/", http.StatusSeeOther)
}

func (r *Router) HandleLogout(w http.ResponseWriter, req *http.Request) {
	logger := hlog.FromRequest(req)

	sess := middleware.GetSession(req.Context())
	logger.Debug().Str("username", sess.Username).Msg("Logout")

	sess.ResetToAnonymous()
	r.sessions.Clear(w)
	http.Redirect(w, req, "/", http.StatusSeeOther)
}
