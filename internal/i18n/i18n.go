// Package i18n holds the site's localized copy. French is the canonical
// language; English is the alternate. Lookups never fail: unknown
// languages and unknown message codes fall back rather than erroring.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is served when negotiation finds no supported match.
const DefaultLanguage = "fr"

// Strings is the full typed copy table for one language. Every page and
// form pulls its text from here so templates stay language-free.
type Strings struct {
	Lang   string
	Locale string

	SiteName         string
	Tagline          string
	HomeTitle        string
	HomeDescription  string
	PlayTitle        string
	AuthTitle        string
	TermsTitle       string
	PrivacyTitle     string
	CookiesTitle     string
	NotFoundHeading  string
	NotFoundBody     string
	LegalBoilerplate string

	LoginHeading         string
	RegisterHeading      string
	UsernameLabel        string
	UsernameOrEmailLabel string
	EmailLabel           string
	PasswordLabel        string
	PasswordConfirmLabel string
	LoginButton          string
	RegisterButton       string
	LogoutButton         string
	ForgotPasswordLink   string

	ResetRequestHeading string
	ResetRequestSent    string
	ResetConfirmHeading string
	ResetConfirmButton  string
	ResetLinkInvalid    string

	EmailValidated       string
	EmailValidationError string

	AccountHeading        string
	ChangeEmailHeading    string
	ChangePasswordHeading string
	CurrentPasswordLabel  string
	NewPasswordLabel      string
	DeleteAccountHeading  string
	DeleteAccountWarning  string
	SaveButton            string
	DeleteButton          string

	// Errors maps server and validation message codes to localized text.
	Errors map[string]string
}

var supported = []string{"fr", "en"}

var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
})

// Supported lists the site languages, canonical language first.
func Supported() []string {
	return supported
}

// IsSupported reports whether lang is one of the site languages.
func IsSupported(lang string) bool {
	for _, l := range supported {
		if l == lang {
			return true
		}
	}
	return false
}

// T returns the copy table for lang, falling back to the canonical
// language for anything unknown.
func T(lang string) *Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[DefaultLanguage]
}

// Match negotiates a site language from an Accept-Language header value.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return base.String()
	}
	return DefaultLanguage
}

// Path prefixes sub with the language segment: Path("en", "/play") is
// "/en/play". An empty sub yields the language home page.
func Path(lang, sub string) string {
	if !IsSupported(lang) {
		lang = DefaultLanguage
	}
	if sub == "" || sub == "/" {
		return "/" + lang
	}
	if !strings.HasPrefix(sub, "/") {
		sub = "/" + sub
	}
	return "/" + lang + sub
}

// Error resolves a message code for lang, falling back first to the
// canonical language's table and then to the code itself.
func Error(lang, code string) string {
	if msg, ok := T(lang).Errors[code]; ok {
		return msg
	}
	if msg, ok := T(DefaultLanguage).Errors[code]; ok {
		return msg
	}
	return code
}
