package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/auth"
	"github.com/badmarinesstudio/horizon-web/internal/game"
	"github.com/badmarinesstudio/horizon-web/internal/logging"
	"github.com/badmarinesstudio/horizon-web/internal/metrics"
)

// Deps bundles everything the router needs.
type Deps struct {
	Client         api.Client
	Controller     *auth.Controller
	State          *auth.State
	Game           *game.Handler
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	Log            logging.Logger
	DefaultLang    string
	PublicURL      string
}

// NewRouter builds the full route table.
func NewRouter(d Deps) (chi.Router, error) {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	tmpl, err := NewTemplates()
	if err != nil {
		return nil, err
	}
	h := &Handlers{
		client:      d.Client,
		controller:  d.Controller,
		state:       d.State,
		log:         d.Log,
		tmpl:        tmpl,
		defaultLang: d.DefaultLang,
		publicURL:   d.PublicURL,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(pageMetrics(d.Metrics))

	r.Get("/", h.Root)

	// Pre-localization URLs still circulating in old emails and bookmarks.
	r.Get("/login", redirect("/"+d.DefaultLang+"?action=login"))
	r.Get("/signup", redirect("/"+d.DefaultLang+"?action=register"))
	r.Get("/forgot-password", redirect("/"+d.DefaultLang+"?action=password-reset"))
	r.Get("/dashboard", redirect("/"+d.DefaultLang+"/play"))

	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler)
	}
	if d.Game != nil {
		r.Route("/api", d.Game.Mount)
	}

	r.Route("/{lang}", func(r chi.Router) {
		r.Use(h.langGuard)
		r.Get("/", h.Home)
		r.Get("/terms", h.Legal("terms"))
		r.Get("/privacy", h.Legal("privacy"))
		r.Get("/cookies", h.Legal("cookies"))
		r.Group(func(r chi.Router) {
			r.Use(h.publicOnly)
			r.Get("/auth", h.AuthRedirect)
			r.Post("/login", h.LoginForm)
			r.Post("/register", h.RegisterForm)
			r.Post("/password-reset", h.ResetRequestForm)
			r.Post("/password-reset/confirm", h.ResetConfirmForm)
		})

		r.Post("/logout", h.LogoutForm)

		r.Group(func(r chi.Router) {
			r.Use(h.requirePlayer)
			r.Get("/play", h.Play)
			r.Get("/account", h.Account)
			r.Post("/account/email", h.ChangeEmailForm)
			r.Post("/account/password", h.ChangePasswordForm)
			r.Post("/account/delete", h.DeleteAccountForm)
		})

		// Mounted subrouters do not inherit the parent's NotFound.
		r.NotFound(h.NotFound)
	})

	r.NotFound(h.NotFound)
	return r, nil
}

func redirect(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}

// pageMetrics counts requests by matched route pattern and status class.
func pageMetrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.IncPage(route, fmt.Sprintf("%dxx", ww.Status()/100))
		})
	}
}
