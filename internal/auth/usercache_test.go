package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badmarinesstudio/horizon-web/internal/api"
)

func TestUserCacheSetAndClear(t *testing.T) {
	c := NewUserCache()
	require.Nil(t, c.Get())

	u := &api.User{ID: 7, Username: "pilot"}
	c.Set(u)
	require.Equal(t, u, c.Get())

	c.Set(nil)
	require.Nil(t, c.Get())
}

func TestUserCacheSubscribeDoesNotReplay(t *testing.T) {
	c := NewUserCache()
	c.Set(&api.User{ID: 1})

	var calls int
	c.Subscribe(func(*api.User) { calls++ })
	require.Zero(t, calls)

	c.Set(&api.User{ID: 2})
	require.Equal(t, 1, calls)
}

func TestUserCacheUnsubscribe(t *testing.T) {
	c := NewUserCache()

	var calls int
	unsub := c.Subscribe(func(*api.User) { calls++ })
	unsub()
	c.Set(&api.User{ID: 1})

	require.Zero(t, calls)
}
