package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const base = "https://battlecorp.io"

func TestBuildCanonicalAndAlternates(t *testing.T) {
	h := Build(base, Page{Lang: "en", Path: "/play", Title: "Play", Description: "desc"})

	require.Equal(t, "https://battlecorp.io/en/play", h.Canonical)
	require.Empty(t, h.Robots)

	hrefs := map[string]string{}
	for _, l := range h.Alternates {
		require.Equal(t, "alternate", l.Rel)
		hrefs[l.HrefLang] = l.Href
	}
	require.Equal(t, "https://battlecorp.io/fr/play", hrefs["fr"])
	require.Equal(t, "https://battlecorp.io/en/play", hrefs["en"])
	require.Equal(t, "https://battlecorp.io/fr/play", hrefs["x-default"])
}

func TestBuildHomePage(t *testing.T) {
	h := Build(base, Page{Lang: "fr", Title: "Accueil", Description: "desc"})
	require.Equal(t, "https://battlecorp.io/fr", h.Canonical)
}

func TestBuildOpenGraphLocales(t *testing.T) {
	h := Build(base, Page{Lang: "fr", Path: "/terms", Title: "CGU", Description: "desc"})

	props := map[string][]string{}
	for _, p := range h.OpenGraph {
		props[p.Property] = append(props[p.Property], p.Content)
	}
	require.Equal(t, []string{"fr_FR"}, props["og:locale"])
	require.Equal(t, []string{"en_US"}, props["og:locale:alternate"])
	require.Equal(t, []string{"https://battlecorp.io/fr/terms"}, props["og:url"])
	require.Equal(t, []string{"BattleCorp"}, props["og:site_name"])
}

func TestBuildNoIndex(t *testing.T) {
	h := Build(base, Page{Lang: "en", Path: "/auth", Title: "Sign in", Description: "d", NoIndex: true})
	require.Equal(t, "noindex, nofollow", h.Robots)
}
