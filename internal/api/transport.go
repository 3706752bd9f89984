package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/badmarinesstudio/horizon-web/internal/logging"
)

type skipAuthRefreshKey struct{}

// WithSkipAuthRefresh marks the request context so the transport neither
// refreshes the token nor attaches the bearer header. Used by the refresh
// call itself (to prevent recursion) and by public endpoints such as the
// password-reset request.
func WithSkipAuthRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipAuthRefreshKey{}, true)
}

func skipAuthRefresh(ctx context.Context) bool {
	v, _ := ctx.Value(skipAuthRefreshKey{}).(bool)
	return v
}

// RefreshFunc yields a fresh access token, or ok=false when none is
// available. The auth controller's RefreshAuth satisfies this.
type RefreshFunc func(ctx context.Context) (token string, ok bool)

// AuthTransport wraps every outgoing API request: it asks the refresh hook
// for a current token and attaches it as a bearer credential. Requests
// flagged with WithSkipAuthRefresh pass through unmodified, as do all
// requests until a hook is installed.
//
// Token freshness is thereby a cross-cutting concern; no call site needs
// to reason about expiry.
type AuthTransport struct {
	base http.RoundTripper
	log  logging.Logger

	mu      sync.RWMutex
	refresh RefreshFunc
}

func NewAuthTransport(base http.RoundTripper, log logging.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = logging.Nop()
	}
	return &AuthTransport{base: base, log: log}
}

// SetRefreshHook installs the token source. The controller is constructed
// after the client, so the hook arrives late in the composition root.
func (t *AuthTransport) SetRefreshHook(fn RefreshFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refresh = fn
}

func (t *AuthTransport) hook() RefreshFunc {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refresh
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	fn := t.hook()
	if fn == nil || skipAuthRefresh(req.Context()) {
		return t.base.RoundTrip(req)
	}

	token, ok := fn(req.Context())

	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	if ok {
		clone.Header.Set("Authorization", "Bearer "+token)
	} else {
		// The request proceeds without credentials; the server answers
		// with an auth error the caller handles.
		t.log.Warn(req.Context(), "access token not found", "url", req.URL.Path)
	}

	return t.base.RoundTrip(clone)
}
