package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/badmarinesstudio/horizon-web/internal/i18n"
)

// requirePlayer guards private routes: without an established session the
// visitor is sent to the auth panel.
func (h *Handlers) requirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.state.Authenticated() {
			lang := chi.URLParam(r, "lang")
			http.Redirect(w, r, i18n.Path(lang, "/auth"), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// publicOnly guards the auth entry points: a visitor with an established
// session is sent to the play page instead.
func (h *Handlers) publicOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.state.Authenticated() {
			lang := chi.URLParam(r, "lang")
			http.Redirect(w, r, i18n.Path(lang, "/play"), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// langGuard validates the language prefix. Unknown prefixes redirect to
// the default language with sub-path and query preserved, so stale links
// keep working.
func (h *Handlers) langGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := chi.URLParam(r, "lang")
		if !i18n.IsSupported(lang) {
			target := "/" + h.defaultLang + trimLangPrefix(r.URL.Path, lang)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func trimLangPrefix(path, lang string) string {
	rest := path[len("/"+lang):]
	if rest == "/" {
		return ""
	}
	return rest
}
