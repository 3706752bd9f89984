package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/i18n"
	"github.com/badmarinesstudio/horizon-web/internal/seo"
	"github.com/badmarinesstudio/horizon-web/internal/validate"
)

// errorCode maps an API failure to a message code for the current form.
func errorCode(err error) string {
	switch {
	case errors.Is(err, api.ErrUnreachable):
		return "Unreachable"
	case api.IsUnauthorized(err):
		if code := api.MessageCode(err); code != "" {
			return code
		}
		return "InvalidCredentials"
	default:
		return "Generic"
	}
}

// authPanel rebuilds the home page with the given auth panel state, used
// when a form submission must be re-shown.
func (h *Handlers) authPanel(w http.ResponseWriter, r *http.Request, action, key string, data *pageData) {
	data.Action = action
	data.Key = key
	h.render(w, r, http.StatusOK, "home", data)
}

func (h *Handlers) homeData(w http.ResponseWriter, r *http.Request, lang string) *pageData {
	return h.page(w, r, lang, seo.Page{
		Title:       i18n.T(lang).HomeTitle,
		Description: i18n.T(lang).HomeDescription,
	})
}

// LoginForm handles the login submission. Success stores the token, kicks
// off the profile fetch, and lands on the play page.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	creds := api.Credentials{
		UsernameOrEmail: r.PostFormValue("usernameOrEmail"),
		Password:        r.PostFormValue("password"),
	}

	token, err := h.client.Login(r.Context(), creds)
	if err != nil {
		h.log.Info(r.Context(), "login rejected", "err", err)
		data := h.homeData(w, r, lang)
		data.Form["usernameOrEmail"] = creds.UsernameOrEmail
		data.Errors["form"] = i18n.Error(lang, errorCode(err))
		h.authPanel(w, r, "login", "", data)
		return
	}

	h.controller.Login(r.Context(), token)
	http.Redirect(w, r, i18n.Path(lang, "/play"), http.StatusSeeOther)
}

// LogoutForm ends the session and returns to the home page.
func (h *Handlers) LogoutForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	h.controller.Logout(r.Context())
	http.Redirect(w, r, "/"+lang, http.StatusSeeOther)
}

// RegisterForm validates locally, submits, and maps the server's 412
// field map back onto the form. Success shows the check-your-email notice
// on the login panel.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	reg := api.Registration{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}

	data := h.homeData(w, r, lang)
	data.Form["username"] = reg.Username
	data.Form["email"] = reg.Email

	if code := validate.Username(reg.Username); code != "" {
		data.Errors["username"] = i18n.Error(lang, code)
	}
	if code := validate.Email(reg.Email); code != "" {
		data.Errors["email"] = i18n.Error(lang, code)
	}
	if codes := validate.Password(reg.Password); len(codes) > 0 {
		data.Errors["password"] = i18n.Error(lang, codes[0])
	}
	if reg.Password != reg.ConfirmPassword {
		data.Errors["confirmPassword"] = i18n.Error(lang, "PasswordErrorMismatch")
	}
	if len(data.Errors) > 0 {
		h.authPanel(w, r, "register", "", data)
		return
	}

	if err := h.client.Register(r.Context(), reg); err != nil {
		h.log.Info(r.Context(), "registration rejected", "err", err)
		if fields, ok := api.AsValidation(err); ok {
			for field, code := range fields {
				data.Errors[field] = i18n.Error(lang, code)
			}
		} else {
			data.Errors["form"] = i18n.Error(lang, errorCode(err))
		}
		h.authPanel(w, r, "register", "", data)
		return
	}

	setFlash(w, "RegisterSuccess")
	http.Redirect(w, r, "/"+lang+"?action=login", http.StatusSeeOther)
}

// ResetRequestForm asks for the reset email. The outcome is the same
// notice whether or not the address exists.
func (h *Handlers) ResetRequestForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")

	data := h.homeData(w, r, lang)
	if code := validate.Email(email); code != "" {
		data.Form["email"] = email
		data.Errors["email"] = i18n.Error(lang, code)
		h.authPanel(w, r, "password-reset", "", data)
		return
	}

	if err := h.client.RequestPasswordReset(r.Context(), email); err != nil {
		if errors.Is(err, api.ErrUnreachable) {
			data.Form["email"] = email
			data.Errors["form"] = i18n.Error(lang, "Unreachable")
			h.authPanel(w, r, "password-reset", "", data)
			return
		}
		// Do not leak whether the address exists.
		h.log.Info(r.Context(), "password reset request failed", "err", err)
	}

	data.Notice = data.T.ResetRequestSent
	h.authPanel(w, r, "login", "", data)
}

// ResetConfirmForm sets the new password using the one-time token.
func (h *Handlers) ResetConfirmForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	key := r.PostFormValue("k")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirmPassword")

	data := h.homeData(w, r, lang)
	if codes := validate.Password(password); len(codes) > 0 {
		data.Errors["password"] = i18n.Error(lang, codes[0])
	}
	if password != confirm {
		data.Errors["confirmPassword"] = i18n.Error(lang, "PasswordErrorMismatch")
	}
	if len(data.Errors) > 0 {
		h.authPanel(w, r, "password-reset", key, data)
		return
	}

	if err := h.client.ConfirmPasswordReset(r.Context(), key, password); err != nil {
		h.log.Info(r.Context(), "password reset confirm failed", "err", err)
		if errors.Is(err, api.ErrUnreachable) {
			data.Errors["form"] = i18n.Error(lang, "Unreachable")
			h.authPanel(w, r, "password-reset", key, data)
			return
		}
		data.Errors["form"] = data.T.ResetLinkInvalid
		h.authPanel(w, r, "password-reset", "", data)
		return
	}

	setFlash(w, "PasswordResetSuccess")
	http.Redirect(w, r, "/"+lang+"?action=login", http.StatusSeeOther)
}

func (h *Handlers) accountData(w http.ResponseWriter, r *http.Request, lang string) *pageData {
	return h.page(w, r, lang, seo.Page{
		Path:        "/account",
		Title:       i18n.T(lang).AccountHeading,
		Description: i18n.T(lang).HomeDescription,
		NoIndex:     true,
	})
}

// ChangeEmailForm updates the account address; the profile is re-fetched
// so the panel shows the new value.
func (h *Handlers) ChangeEmailForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	data := h.accountData(w, r, lang)
	if code := validate.Email(email); code != "" {
		data.Form["email"] = email
		data.Errors["email"] = i18n.Error(lang, code)
		h.render(w, r, http.StatusOK, "account", data)
		return
	}

	if err := h.client.ChangeEmail(r.Context(), email, password); err != nil {
		h.log.Info(r.Context(), "email change rejected", "err", err)
		data.Form["email"] = email
		data.Errors["emailForm"] = i18n.Error(lang, errorCode(err))
		h.render(w, r, http.StatusOK, "account", data)
		return
	}

	h.controller.FetchUser(r.Context())
	setFlash(w, "EmailChangeSuccess")
	http.Redirect(w, r, i18n.Path(lang, "/account"), http.StatusSeeOther)
}

// ChangePasswordForm updates the account password.
func (h *Handlers) ChangePasswordForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	current := r.PostFormValue("currentPassword")
	next := r.PostFormValue("newPassword")
	confirm := r.PostFormValue("confirmPassword")

	data := h.accountData(w, r, lang)
	if codes := validate.Password(next); len(codes) > 0 {
		data.Errors["newPassword"] = i18n.Error(lang, codes[0])
	}
	if next != confirm {
		data.Errors["confirmPassword"] = i18n.Error(lang, "PasswordErrorMismatch")
	}
	if len(data.Errors) > 0 {
		h.render(w, r, http.StatusOK, "account", data)
		return
	}

	if err := h.client.ChangePassword(r.Context(), current, next); err != nil {
		h.log.Info(r.Context(), "password change rejected", "err", err)
		data.Errors["passwordForm"] = i18n.Error(lang, errorCode(err))
		h.render(w, r, http.StatusOK, "account", data)
		return
	}

	setFlash(w, "PasswordChangeSuccess")
	http.Redirect(w, r, i18n.Path(lang, "/account"), http.StatusSeeOther)
}

// DeleteAccountForm deletes the account and ends the session.
func (h *Handlers) DeleteAccountForm(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	password := r.PostFormValue("password")

	if err := h.client.DeleteAccount(r.Context(), password); err != nil {
		h.log.Info(r.Context(), "account deletion rejected", "err", err)
		data := h.accountData(w, r, lang)
		data.Errors["deleteForm"] = i18n.Error(lang, errorCode(err))
		h.render(w, r, http.StatusOK, "account", data)
		return
	}

	h.controller.Logout(r.Context())
	http.Redirect(w, r, "/"+lang, http.StatusSeeOther)
}
