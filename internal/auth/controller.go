package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/logging"
	"github.com/badmarinesstudio/horizon-web/internal/metrics"
)

// API is the slice of the Horizon client the controller drives.
type API interface {
	Refresh(ctx context.Context) (string, error)
	Revoke(ctx context.Context) error
	Profile(ctx context.Context) (*api.User, error)
}

// Controller orchestrates login, logout, silent token refresh, and the
// profile fetch. It is the only writer to the two caches; UI code reads
// them through State and never mutates them directly.
type Controller struct {
	api     API
	tokens  *TokenCache
	users   *UserCache
	log     logging.Logger
	metrics *metrics.Metrics

	mu          sync.Mutex
	initialized bool
	fetching    bool

	refreshGroup singleflight.Group
}

// NewController wires the controller to its collaborators. metrics may be
// nil.
func NewController(client API, tokens *TokenCache, users *UserCache, log logging.Logger, m *metrics.Metrics) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	return &Controller{api: client, tokens: tokens, users: users, log: log, metrics: m}
}

// InitAuth marks the controller initialized and forces one notification
// pass over the token cache so components that subscribed before startup
// still receive the persisted token state. Call exactly once, early, before
// any decision depends on Authenticated.
func (c *Controller) InitAuth(ctx context.Context) {
	// Re-setting the current value triggers the initial callbacks.
	c.tokens.Set(c.tokens.Get())

	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()

	c.log.Debug(ctx, "auth initialized")
}

// RefreshAuth is the silent-refresh step the API transport runs before
// every outgoing call. It returns the token to attach, or ok=false when
// the request must proceed without credentials.
//
// Behavior:
//   - no token after InitAuth has run: refuse (an explicit logout must not
//     be undone by a reflexive refresh).
//   - token missing, malformed, or within refreshWindow of expiry: perform
//     one refresh call. Concurrent callers share a single network call via
//     singleflight; each still makes its own need-refresh decision.
//   - refresh failure of any kind clears both caches (full logout).
func (c *Controller) RefreshAuth(ctx context.Context) (string, bool) {
	current := c.tokens.Get()

	c.mu.Lock()
	initialized := c.initialized
	c.mu.Unlock()

	if current == "" && initialized {
		c.log.Warn(ctx, "no token in memory, refusing refresh")
		return "", false
	}

	needRefresh := current == ""
	if current != "" {
		exp, err := tokenExpiry(current)
		// A token that cannot be decoded is treated like one about to
		// expire: try a refresh rather than failing hard.
		needRefresh = err != nil || time.Until(exp) <= refreshWindow
	}

	if !needRefresh {
		return current, true
	}

	token, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		c.metrics.IncRefresh()
		return c.api.Refresh(ctx)
	})
	if err != nil {
		c.log.Warn(ctx, "token refresh failed, logging out", "err", err)
		c.metrics.IncRefreshFailure()
		c.tokens.Set("")
		c.users.Set(nil)
		return "", false
	}

	newToken := token.(string)
	if newToken != "" {
		c.tokens.Set(newToken)
	}
	return newToken, newToken != ""
}

// FetchUser starts a profile fetch unless one is already in flight.
// Fire-and-forget: completion is observed through the user cache. On
// failure the cache is left untouched.
//
// The fetch is detached from the caller's cancellation. Form handlers
// return before the profile call completes, and net/http cancels their
// request context on return; the fetch must outlive that.
func (c *Controller) FetchUser(ctx context.Context) {
	c.mu.Lock()
	if c.fetching {
		c.mu.Unlock()
		c.log.Warn(ctx, "profile fetch already in flight, skipping")
		return
	}
	c.fetching = true
	c.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() {
			c.mu.Lock()
			c.fetching = false
			c.mu.Unlock()
		}()

		user, err := c.api.Profile(ctx)
		if err != nil {
			c.log.Error(ctx, "profile fetch failed", "err", err)
			return
		}
		c.users.Set(user)
		c.log.Debug(ctx, "profile fetched", "user_id", user.ID)
	}()
}

// Login stores the freshly issued token and kicks off the profile fetch.
// It does not await the fetch; callers observe it via the user cache.
func (c *Controller) Login(ctx context.Context, token string) {
	c.tokens.Set(token)
	c.metrics.IncLogin()
	c.FetchUser(ctx)
}

// Logout revokes the server-side session and clears both caches. A failed
// revoke is logged but never prevents the local logout.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Revoke(ctx); err != nil {
		c.log.Warn(ctx, "server logout failed", "err", err)
	}
	c.tokens.Set("")
	c.users.Set(nil)
	c.metrics.IncLogout()
}
