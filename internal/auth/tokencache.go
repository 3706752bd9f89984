// Package auth implements the session coordination core: the token and
// user caches, the controller that orchestrates login/refresh/logout
// against the Horizon API, and the derived authenticated state the UI
// consumes. All mutation of the two caches funnels through the Controller.
package auth

import (
	"context"
	"sync"

	"github.com/badmarinesstudio/horizon-web/internal/logging"
	"github.com/badmarinesstudio/horizon-web/internal/storage/localstate"
)

// TokenCache holds the single live access token. The empty string means
// "no token". Non-empty values are persisted through the localstate
// repository under an environment-qualified key; clearing removes the
// persisted entry.
//
// Subscribers are notified synchronously after every Set, in registration
// order, with the new value. Subscribe does not replay the current value;
// callers needing it call Get first (the controller's InitAuth performs
// the one startup notification pass).
type TokenCache struct {
	store localstate.Repository
	key   string
	log   logging.Logger

	mu     sync.Mutex
	token  string
	nextID int
	subs   []tokenSubscriber
}

type tokenSubscriber struct {
	id int
	fn func(token string)
}

// NewTokenCache builds a cache whose initial value is read from the
// repository; a read failure is logged and treated as "no token".
func NewTokenCache(ctx context.Context, store localstate.Repository, key string, log logging.Logger) *TokenCache {
	if log == nil {
		log = logging.Nop()
	}
	c := &TokenCache{store: store, key: key, log: log}
	if store != nil {
		token, err := store.Get(ctx, key)
		if err != nil {
			log.Error(ctx, "read persisted token", "err", err)
		} else {
			c.token = token
		}
	}
	return c
}

// Get returns the current token, "" when none. No side effects.
func (c *TokenCache) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Set replaces the current token, updates the persisted entry, and
// notifies all subscribers. Persistence failures are logged; the in-memory
// value stays authoritative and notification still happens.
//
// The persisted entry is written under the same lock as the in-memory
// swap, so concurrent Sets cannot leave memory and disk holding different
// tokens.
func (c *TokenCache) Set(token string) {
	c.mu.Lock()
	c.token = token
	if c.store != nil {
		ctx := context.Background()
		var err error
		if token != "" {
			err = c.store.Set(ctx, c.key, token)
		} else {
			err = c.store.Delete(ctx, c.key)
		}
		if err != nil {
			c.log.Error(ctx, "persist token", "err", err)
		}
	}
	subs := make([]tokenSubscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	// Callbacks run outside the lock so they may call Get/Subscribe.
	for _, s := range subs {
		s.fn(token)
	}
}

// Subscribe registers fn for future changes and returns its unsubscribe
// function.
func (c *TokenCache) Subscribe(fn func(token string)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, tokenSubscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
