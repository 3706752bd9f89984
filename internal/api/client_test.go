package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithLanguageFunc(func() string { return "fr" }))
	require.NoError(t, err)
	return c
}

func TestLoginReturnsAccessToken(t *testing.T) {
	var gotPath, gotLang string
	var gotBody Credentials

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLang = r.URL.Query().Get("lang")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-123"})
	}))

	tok, err := c.Login(context.Background(), Credentials{UsernameOrEmail: "cmdr", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)
	require.Equal(t, "/auth/user/login", gotPath)
	require.Equal(t, "fr", gotLang)
	require.Equal(t, "cmdr", gotBody.UsernameOrEmail)
}

func TestLoginUnauthorizedCarriesMessageCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": AccountBanned})
	}))

	_, err := c.Login(context.Background(), Credentials{UsernameOrEmail: "cmdr", Password: "bad"})
	require.Error(t, err)
	require.True(t, IsUnauthorized(err))
	require.Equal(t, AccountBanned, MessageCode(err))
}

func TestRegisterValidationRejection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "validation failed",
			"errors":  map[string]string{"email": "already taken"},
		})
	}))

	err := c.Register(context.Background(), Registration{Username: "cmdr", Email: "a@b.c"})
	require.Error(t, err)
	fields, ok := AsValidation(err)
	require.True(t, ok)
	require.Equal(t, "already taken", fields["email"])
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // guaranteed-dead address

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestRefreshSkipsOwnHook(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-next"})
	}))

	hookCalls := 0
	c.Transport().SetRefreshHook(func(ctx context.Context) (string, bool) {
		hookCalls++
		return "stale", true
	})

	tok, err := c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-next", tok)
	require.Zero(t, hookCalls, "refresh must not recurse into the refresh hook")
}

func TestProfileGoesThroughHook(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(User{ID: 1, Username: "cmdr"})
	}))
	c.Transport().SetRefreshHook(func(ctx context.Context) (string, bool) { return "tok-123", true })

	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "cmdr", u.Username)
}
