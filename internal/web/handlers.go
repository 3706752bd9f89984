// Package web serves the localized site: landing and legal pages, the
// auth panel, the private play and account pages, and the local API the
// embedded game consumes.
package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/auth"
	"github.com/badmarinesstudio/horizon-web/internal/i18n"
	"github.com/badmarinesstudio/horizon-web/internal/logging"
	"github.com/badmarinesstudio/horizon-web/internal/seo"
)

// Handlers carries the page and form handlers' shared collaborators.
type Handlers struct {
	client      api.Client
	controller  *auth.Controller
	state       *auth.State
	log         logging.Logger
	tmpl        *Templates
	defaultLang string
	publicURL   string
}

// pageData is the template payload shared by every page.
type pageData struct {
	Lang          string
	T             *i18n.Strings
	Head          seo.Head
	Authenticated bool
	User          *api.User
	Action        string
	Key           string
	Notice        string
	Errors        map[string]string
	Form          map[string]string
	Paragraphs    []string
}

// page assembles the common payload for one request. Popping the flash
// cookie here means every page can carry a one-shot notice.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request, lang string, pg seo.Page) *pageData {
	pg.Lang = lang
	data := &pageData{
		Lang:          lang,
		T:             i18n.T(lang),
		Head:          seo.Build(h.origin(r), pg),
		Authenticated: h.state.Authenticated(),
		User:          h.state.User(),
		Errors:        map[string]string{},
		Form:          map[string]string{},
	}
	if code := popFlash(w, r); code != "" {
		data.Notice = i18n.Error(lang, code)
	}
	return data
}

// origin is the public base URL used for canonical and og:url tags.
func (h *Handlers) origin(r *http.Request) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// render buffers the page so a template failure can still yield a clean
// 500 instead of a half-written body.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data *pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, page, data); err != nil {
		h.log.Error(r.Context(), "render page", "page", page, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Root redirects to the negotiated language's home page.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Match(r.Header.Get("Accept-Language"))
	if r.Header.Get("Accept-Language") == "" {
		lang = h.defaultLang
	}
	http.Redirect(w, r, "/"+lang, http.StatusFound)
}

// Home serves the landing page. The auth panel is driven entirely by the
// action and k query parameters; closing the panel is a plain link back
// to the bare language home.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	action := r.URL.Query().Get("action")
	key := r.URL.Query().Get("k")

	data := h.page(w, r, lang, seo.Page{
		Title:       i18n.T(lang).HomeTitle,
		Description: i18n.T(lang).HomeDescription,
	})

	switch action {
	case "login", "register", "password-reset":
		if data.Authenticated {
			http.Redirect(w, r, i18n.Path(lang, "/play"), http.StatusFound)
			return
		}
		data.Action = action
		data.Key = key
		if action == "password-reset" && key != "" {
			if err := h.client.ValidatePasswordReset(r.Context(), key); err != nil {
				h.log.Warn(r.Context(), "password reset token rejected", "err", err)
				data.Errors["form"] = data.T.ResetLinkInvalid
				data.Key = ""
			}
		}
	case "email-validation":
		if key != "" {
			if err := h.client.ConfirmEmailValidation(r.Context(), key); err != nil {
				h.log.Warn(r.Context(), "email validation rejected", "err", err)
				data.Notice = data.T.EmailValidationError
			} else {
				data.Notice = data.T.EmailValidated
				data.Action = "login"
			}
		}
	}

	h.render(w, r, http.StatusOK, "home", data)
}

// Legal returns the handler for one of the legal pages.
func (h *Handlers) Legal(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := chi.URLParam(r, "lang")
		t := i18n.T(lang)

		var title string
		switch kind {
		case "terms":
			title = t.TermsTitle
		case "privacy":
			title = t.PrivacyTitle
		case "cookies":
			title = t.CookiesTitle
		}

		data := h.page(w, r, lang, seo.Page{
			Path:        "/" + kind,
			Title:       title,
			Description: t.HomeDescription,
		})
		data.Paragraphs = []string{t.LegalBoilerplate}
		h.render(w, r, http.StatusOK, "legal", data)
	}
}

// Play serves the private play page embedding the game loader.
func (h *Handlers) Play(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	data := h.page(w, r, lang, seo.Page{
		Path:        "/play",
		Title:       i18n.T(lang).PlayTitle,
		Description: i18n.T(lang).HomeDescription,
		NoIndex:     true,
	})
	h.render(w, r, http.StatusOK, "play", data)
}

// Account serves the private account panel.
func (h *Handlers) Account(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	data := h.page(w, r, lang, seo.Page{
		Path:        "/account",
		Title:       i18n.T(lang).AccountHeading,
		Description: i18n.T(lang).HomeDescription,
		NoIndex:     true,
	})
	h.render(w, r, http.StatusOK, "account", data)
}

// AuthRedirect sends visitors into the home auth panel. The publicOnly
// guard has already diverted anyone with a session.
func (h *Handlers) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	http.Redirect(w, r, "/"+lang+"?action=login", http.StatusFound)
}

// NotFound renders the localized 404 page, guessing the language from the
// path prefix.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	lang := h.defaultLang
	if segs := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2); len(segs) > 0 && i18n.IsSupported(segs[0]) {
		lang = segs[0]
	}
	data := h.page(w, r, lang, seo.Page{
		Title:       i18n.T(lang).NotFoundHeading,
		Description: i18n.T(lang).HomeDescription,
		NoIndex:     true,
	})
	h.render(w, r, http.StatusNotFound, "notfound", data)
}
