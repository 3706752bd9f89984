// Package validate mirrors the server's account field rules so forms can
// reject bad input before a round-trip. The server remains authoritative;
// its 412 responses override anything accepted here.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// Message codes resolved through the i18n tables.
const (
	CodePasswordMinLength = "PasswordErrorMinLength"
	CodePasswordTypes     = "PasswordErrorTypes"
	CodeEmailInvalid      = "EmailErrorInvalid"
	CodeEmailForbidden    = "EmailErrorForbiddenDomain"
	CodeUsernameInvalid   = "UsernameErrorInvalid"
)

const passwordMinLength = 8

// specialChars is the exact set the server counts as a character class.
const specialChars = `!@#$%^&*()_+-=[]{}|;:'",.<>/?`

// emailRx matches a dotted-atom or quoted local part, then a domain of
// letter/digit/hyphen labels ending in a TLD of at least two letters, or
// a bracketed IPv4 literal.
var emailRx = regexp.MustCompile(`^(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|(".+"))@(([[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// Disposable-address providers rejected at registration.
var forbiddenEmailDomains = []string{
	"mailinator.com",
	"tempmail.com",
}

// Password checks length and character variety: at least 8 characters
// drawn from at least 3 of the 4 classes (lowercase, uppercase, digits,
// specials). Returns the codes of every failed rule, nil when valid.
func Password(password string) []string {
	var codes []string
	if len(password) < passwordMinLength {
		codes = append(codes, CodePasswordMinLength)
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	classes := 0
	for _, ok := range []bool{lower, upper, digit, special} {
		if ok {
			classes++
		}
	}
	if classes < 3 {
		codes = append(codes, CodePasswordTypes)
	}
	return codes
}

// Email checks the address shape and rejects disposable providers.
// Returns "" when valid, a message code otherwise.
func Email(address string) string {
	address = strings.TrimSpace(address)
	if !emailRx.MatchString(address) {
		return CodeEmailInvalid
	}
	domain := strings.ToLower(address[strings.LastIndex(address, "@")+1:])
	for _, forbidden := range forbiddenEmailDomains {
		if domain == forbidden {
			return CodeEmailForbidden
		}
	}
	return ""
}

// Username checks for 3 to 30 characters, each an ASCII alphanumeric or
// a Latin-1 letter, excluding the multiplication and division signs and
// the thorn and eszett letters that sit inside that block.
// Returns "" when valid, a message code otherwise.
func Username(name string) string {
	runes := []rune(name)
	if len(runes) < 3 || len(runes) > 30 {
		return CodeUsernameInvalid
	}
	for _, r := range runes {
		if !usernameRune(r) {
			return CodeUsernameInvalid
		}
	}
	return ""
}

func usernameRune(r rune) bool {
	switch r {
	case '×', 'Þ', 'ß', '÷', 'þ', 'ø':
		return false
	}
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'À' && r <= 'ÿ':
		return true
	}
	return false
}
