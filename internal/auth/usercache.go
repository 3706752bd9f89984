package auth

import (
	"sync"

	"github.com/badmarinesstudio/horizon-web/internal/api"
)

// UserCache holds the current authenticated profile, nil when logged out.
// Same subscription contract as TokenCache, with no persistence: the
// profile is always re-fetched from the server, never written to disk.
type UserCache struct {
	mu     sync.Mutex
	user   *api.User
	nextID int
	subs   []userSubscriber
}

type userSubscriber struct {
	id int
	fn func(user *api.User)
}

func NewUserCache() *UserCache {
	return &UserCache{}
}

// Get returns the current profile or nil.
func (c *UserCache) Get() *api.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Set replaces the current profile and notifies all subscribers.
func (c *UserCache) Set(user *api.User) {
	c.mu.Lock()
	c.user = user
	subs := make([]userSubscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(user)
	}
}

// Subscribe registers fn for future changes and returns its unsubscribe
// function.
func (c *UserCache) Subscribe(fn func(user *api.User)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, userSubscriber{id: id, fn: fn})

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
