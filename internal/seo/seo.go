// Package seo builds the head metadata for public pages: canonical URL,
// hreflang alternates for every site language, and Open Graph properties
// with the matching locale codes.
package seo

import (
	"github.com/badmarinesstudio/horizon-web/internal/i18n"
)

// Page describes one routable page for metadata purposes. Path is the
// language-relative sub path ("/play", "" for the home page).
type Page struct {
	Lang        string
	Path        string
	Title       string
	Description string
	NoIndex     bool
}

// Link is one <link> element.
type Link struct {
	Rel      string
	Href     string
	HrefLang string
}

// Property is one Open Graph <meta property=...> element.
type Property struct {
	Property string
	Content  string
}

// Head is the rendered metadata set for one page.
type Head struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	Alternates  []Link
	OpenGraph   []Property
}

// Build assembles the head metadata for p. baseURL is the public origin
// without a trailing slash, e.g. "https://battlecorp.io".
func Build(baseURL string, p Page) Head {
	h := Head{
		Title:       p.Title,
		Description: p.Description,
		Canonical:   baseURL + i18n.Path(p.Lang, p.Path),
	}
	if p.NoIndex {
		h.Robots = "noindex, nofollow"
	}

	for _, lang := range i18n.Supported() {
		h.Alternates = append(h.Alternates, Link{
			Rel:      "alternate",
			HrefLang: lang,
			Href:     baseURL + i18n.Path(lang, p.Path),
		})
	}
	// Unmatched visitors land on the canonical language.
	h.Alternates = append(h.Alternates, Link{
		Rel:      "alternate",
		HrefLang: "x-default",
		Href:     baseURL + i18n.Path(i18n.DefaultLanguage, p.Path),
	})

	strings := i18n.T(p.Lang)
	h.OpenGraph = append(h.OpenGraph,
		Property{"og:type", "website"},
		Property{"og:site_name", strings.SiteName},
		Property{"og:title", p.Title},
		Property{"og:description", p.Description},
		Property{"og:url", h.Canonical},
		Property{"og:locale", strings.Locale},
	)
	for _, lang := range i18n.Supported() {
		if lang == strings.Lang {
			continue
		}
		h.OpenGraph = append(h.OpenGraph, Property{"og:locale:alternate", i18n.T(lang).Locale})
	}
	return h
}
