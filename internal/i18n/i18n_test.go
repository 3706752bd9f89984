package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTFallsBackToFrench(t *testing.T) {
	require.Equal(t, "fr", T("fr").Lang)
	require.Equal(t, "en", T("en").Lang)
	require.Equal(t, "fr", T("de").Lang)
	require.Equal(t, "fr", T("").Lang)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"fr-FR,fr;q=0.9", "fr"},
		{"en-US,en;q=0.9,fr;q=0.5", "en"},
		{"en-GB", "en"},
		{"de-DE,de;q=0.9", "fr"},
		{"", "fr"},
		{"garbage;;;", "fr"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Match(tc.accept), "accept=%q", tc.accept)
	}
}

func TestPath(t *testing.T) {
	require.Equal(t, "/fr", Path("fr", ""))
	require.Equal(t, "/en", Path("en", "/"))
	require.Equal(t, "/en/play", Path("en", "/play"))
	require.Equal(t, "/fr/auth", Path("fr", "auth"))
	require.Equal(t, "/fr/play", Path("de", "/play"))
}

func TestErrorResolution(t *testing.T) {
	require.Equal(t, "Ce compte a été banni.", Error("fr", "Banned account"))
	require.Equal(t, "This account has been banned.", Error("en", "Banned account"))
	// Unknown language falls back to French copy.
	require.Equal(t, "Ce compte a été banni.", Error("de", "Banned account"))
	// Unknown code passes through untranslated.
	require.Equal(t, "SomeNewCode", Error("en", "SomeNewCode"))
}

func TestTablesCoverSameCodes(t *testing.T) {
	fr, en := T("fr"), T("en")
	for code := range fr.Errors {
		require.Contains(t, en.Errors, code)
	}
	for code := range en.Errors {
		require.Contains(t, fr.Errors, code)
	}
}
