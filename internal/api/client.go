// Package api is the hand-written client for the remote Horizon REST API,
// standing in for the generated client the original front-end consumed.
// Request/response shapes and status codes are owned by the server; this
// package only mirrors them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/badmarinesstudio/horizon-web/internal/logging"
)

// Client defines the Horizon API operations the front-end consumes.
type Client interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Refresh(ctx context.Context) (string, error)
	Revoke(ctx context.Context) error
	Profile(ctx context.Context) (*User, error)
	Register(ctx context.Context, reg Registration) error
	ChangeEmail(ctx context.Context, newEmail, password string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, password string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ValidatePasswordReset(ctx context.Context, token string) error
	ConfirmPasswordReset(ctx context.Context, token, password string) error
	ConfirmEmailValidation(ctx context.Context, token string) error
}

// HTTPClient is the concrete Client over net/http. Its transport is an
// AuthTransport, so every call except the flagged ones goes through the
// silent-refresh hook.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	transport *AuthTransport
	lang      func() string
	log       logging.Logger
}

// Option customizes a Client under construction.
type Option func(*HTTPClient)

// WithLogger sets the client logger.
func WithLogger(log logging.Logger) Option {
	return func(c *HTTPClient) { c.log = log }
}

// WithLanguageFunc sets the callback yielding the current UI language,
// added as a lang query parameter to every call so server-sent emails and
// messages are localized.
func WithLanguageFunc(fn func() string) Option {
	return func(c *HTTPClient) { c.lang = fn }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithBaseTransport replaces the underlying RoundTripper the AuthTransport
// wraps. Used by tests.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.transport = NewAuthTransport(rt, c.log)
		c.http.Transport = c.transport
	}
}

// New builds a Horizon API client for the given base URL. The refresh hook
// is installed later via Transport().SetRefreshHook once the auth
// controller exists.
func New(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	c := &HTTPClient{
		baseURL: u,
		lang:    func() string { return "" },
		log:     logging.Nop(),
	}
	c.transport = NewAuthTransport(nil, c.log)
	c.http = &http.Client{Transport: c.transport, Timeout: 15 * time.Second}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Transport exposes the auth transport for hook installation.
func (c *HTTPClient) Transport() *AuthTransport {
	return c.transport
}

// Login exchanges credentials for an access token. A 401 carries an
// account-state message code (AccountCreated, AccountBanned, ...). The
// refresh cookie rides along implicitly.
func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (string, error) {
	var out tokenResponse
	// Login is itself unauthenticated; never trigger a refresh for it.
	if err := c.do(WithSkipAuthRefresh(ctx), http.MethodPost, "/auth/user/login", creds, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", &StatusError{StatusCode: http.StatusOK, Message: "missing access token"}
	}
	return out.AccessToken, nil
}

// Refresh exchanges the refresh cookie for a new access token. The call is
// flagged so the transport does not recurse into the refresh hook.
func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	var out tokenResponse
	if err := c.do(WithSkipAuthRefresh(ctx), http.MethodPost, "/auth/user/refresh", nil, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Revoke invalidates the server-side session.
func (c *HTTPClient) Revoke(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/user/revoke", struct{}{}, nil)
}

// Profile fetches the authenticated player's own account data.
func (c *HTTPClient) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. A 412 carries a per-field error map.
func (c *HTTPClient) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/user/register", reg, nil)
}

func (c *HTTPClient) ChangeEmail(ctx context.Context, newEmail, password string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{newEmail, password}
	return c.do(ctx, http.MethodPost, "/users/account/email", body, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{currentPassword, newPassword}
	return c.do(ctx, http.MethodPost, "/users/account/password", body, nil)
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, password string) error {
	body := struct {
		Password string `json:"password"`
	}{password}
	return c.do(ctx, http.MethodDelete, "/users/account", body, nil)
}

// RequestPasswordReset asks the server to email a one-time reset token.
// Public endpoint: flagged to skip the refresh hook.
func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	return c.do(WithSkipAuthRefresh(ctx), http.MethodPost, "/auth/user/password-reset/request", body, nil)
}

// ValidatePasswordReset checks a one-time reset token before showing the
// new-password form.
func (c *HTTPClient) ValidatePasswordReset(ctx context.Context, token string) error {
	body := struct {
		Token string `json:"token"`
	}{token}
	return c.do(WithSkipAuthRefresh(ctx), http.MethodPost, "/auth/user/password-reset/validate", body, nil)
}

// ConfirmPasswordReset sets the new password using a one-time reset token.
func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	body := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{token, password}
	return c.do(WithSkipAuthRefresh(ctx), http.MethodPost, "/auth/user/password-reset/confirm", body, nil)
}

// ConfirmEmailValidation confirms a freshly registered address using the
// one-time token from the validation email.
func (c *HTTPClient) ConfirmEmailValidation(ctx context.Context, token string) error {
	body := struct {
		Token string `json:"token"`
	}{token}
	return c.do(WithSkipAuthRefresh(ctx), http.MethodPost, "/auth/user/email-validation/confirm", body, nil)
}

// do performs one API round trip: marshals body, adds the lang parameter,
// sends, and maps failures to the package error taxonomy.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if lang := c.lang(); lang != "" {
		q := u.Query()
		q.Set("lang", lang)
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "path", path, "request_id", requestID, "err", err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// statusError decodes the server's error body into a StatusError. A body
// that fails to decode still yields the status code.
func (c *HTTPClient) statusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		se.Message = body.Message
		se.Fields = body.Errors
	}
	return se
}
