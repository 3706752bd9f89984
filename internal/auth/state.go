package auth

import (
	"context"
	"sync"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/logging"
)

// State mirrors the two caches into a derived authenticated flag for the
// UI tree: authenticated holds exactly when both a token and a user are
// present. A token alone (the window between login and the profile fetch
// completing) is not authenticated. State exposes the user but never the
// token itself.
type State struct {
	tokens     *TokenCache
	users      *UserCache
	controller *Controller
	log        logging.Logger

	mu            sync.Mutex
	token         string
	user          *api.User
	authenticated bool
	started       bool
	nextID        int
	subs          []stateSubscriber
	unsubToken    func()
	unsubUser     func()
}

type stateSubscriber struct {
	id int
	fn func(authenticated bool)
}

func NewState(tokens *TokenCache, users *UserCache, controller *Controller, log logging.Logger) *State {
	if log == nil {
		log = logging.Nop()
	}
	return &State{tokens: tokens, users: users, controller: controller, log: log}
}

// Start subscribes to both caches and runs the controller's startup
// priming. When a persisted token exists without a user (a launcher
// restart) it proactively fetches the profile so authenticated can become
// true without a fresh login. Idempotent.
func (s *State) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.token = s.tokens.Get()
	s.user = s.users.Get()
	s.authenticated = s.token != "" && s.user != nil
	s.mu.Unlock()

	s.unsubToken = s.tokens.Subscribe(func(token string) {
		s.apply(func() { s.token = token })
	})
	s.unsubUser = s.users.Subscribe(func(user *api.User) {
		s.apply(func() { s.user = user })
	})

	s.controller.InitAuth(ctx)

	s.mu.Lock()
	needUser := s.token != "" && s.user == nil
	s.mu.Unlock()
	if needUser {
		s.controller.FetchUser(ctx)
	}
}

// Stop unsubscribes from both caches.
func (s *State) Stop() {
	s.mu.Lock()
	unsubToken, unsubUser := s.unsubToken, s.unsubUser
	s.unsubToken, s.unsubUser = nil, nil
	s.started = false
	s.mu.Unlock()

	if unsubToken != nil {
		unsubToken()
	}
	if unsubUser != nil {
		unsubUser()
	}
}

// Authenticated reports whether both token and user are currently present.
func (s *State) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// User returns the current profile or nil.
func (s *State) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Subscribe registers fn to run whenever the derived authenticated value
// changes. Returns the unsubscribe function.
func (s *State) Subscribe(fn func(authenticated bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, stateSubscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// apply runs a mirror mutation, recomputes authenticated, and notifies
// state subscribers when the derived value flipped.
func (s *State) apply(mutate func()) {
	s.mu.Lock()
	mutate()
	was := s.authenticated
	s.authenticated = s.token != "" && s.user != nil
	changed := was != s.authenticated
	now := s.authenticated
	subs := make([]stateSubscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if !changed {
		return
	}
	s.log.Debug(context.Background(), "authenticated changed", "authenticated", now)
	for _, sub := range subs {
		sub.fn(now)
	}
}
