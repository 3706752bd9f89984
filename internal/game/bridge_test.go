package game

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/auth"
)

type stubAPI struct{}

func (stubAPI) Refresh(ctx context.Context) (string, error) { return "refreshed-token", nil }
func (stubAPI) Revoke(ctx context.Context) error            { return nil }
func (stubAPI) Profile(ctx context.Context) (*api.User, error) {
	return nil, errors.New("unavailable")
}

func newBridge(t *testing.T) (*Handler, *auth.TokenCache, *auth.UserCache) {
	t.Helper()
	tokens := auth.NewTokenCache(context.Background(), nil, "k", nil)
	users := auth.NewUserCache()
	controller := auth.NewController(stubAPI{}, tokens, users, nil, nil)
	state := auth.NewState(tokens, users, controller, nil)
	state.Start(context.Background())
	t.Cleanup(state.Stop)

	return NewHandler(nil, tokens, state, controller, nil), tokens, users
}

func authenticate(tokens *auth.TokenCache, users *auth.UserCache) {
	tokens.Set("session-token")
	users.Set(&api.User{ID: 1, Username: "pilot"})
}

func TestBridgeTokenForbiddenWhenLoggedOut(t *testing.T) {
	h, _, _ := newBridge(t)

	rec := httptest.NewRecorder()
	h.Token(rec, httptest.NewRequest(http.MethodGet, "/api/bridge/token", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBridgeTokenReturnsRefreshedToken(t *testing.T) {
	h, tokens, users := newBridge(t)
	authenticate(tokens, users)

	rec := httptest.NewRecorder()
	h.Token(rec, httptest.NewRequest(http.MethodGet, "/api/bridge/token", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"type":"token","token":"refreshed-token"}`, rec.Body.String())
	require.Equal(t, "refreshed-token", tokens.Get())
}

func TestBridgeWSForbiddenWhenLoggedOut(t *testing.T) {
	h, _, _ := newBridge(t)

	rec := httptest.NewRecorder()
	h.WS(rec, httptest.NewRequest(http.MethodGet, "/api/bridge/ws", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBridgeWSPushesTokenChanges(t *testing.T) {
	h, tokens, users := newBridge(t)
	authenticate(tokens, users)

	r := chi.NewRouter()
	r.Route("/api", h.Mount)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/bridge/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg tokenMessage
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "session-token", msg.Token)

	tokens.Set("rotated-token")
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "rotated-token", msg.Token)

	// Logout pushes the empty token and ends the stream.
	tokens.Set("")
	require.NoError(t, conn.ReadJSON(&msg))
	require.Empty(t, msg.Token)

	_, _, err = conn.ReadMessage()
	require.Error(t, err)
}

func TestConfigHandlerServesBuild(t *testing.T) {
	versionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"1.4.2"}`))
	}))
	defer versionSrv.Close()

	service := New(versionSrv.Client(), versionSrv.URL, "https://play.battlecorp.io", true, nil)
	h, tokens, users := newBridge(t)
	h.service = service
	authenticate(tokens, users)

	rec := httptest.NewRecorder()
	h.Config(rec, httptest.NewRequest(http.MethodGet, "/api/game/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"version":"1.4.2"`)
	require.Contains(t, rec.Body.String(), "_WebGL_PROD.loader.js")
}

func TestConfigHandlerForbiddenWhenLoggedOut(t *testing.T) {
	h, _, _ := newBridge(t)

	rec := httptest.NewRecorder()
	h.Config(rec, httptest.NewRequest(http.MethodGet, "/api/game/config", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestConfigHandlerBadGateway(t *testing.T) {
	versionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer versionSrv.Close()

	service := New(versionSrv.Client(), versionSrv.URL, "https://play.battlecorp.io", true, nil)
	h, tokens, users := newBridge(t)
	h.service = service
	authenticate(tokens, users)

	rec := httptest.NewRecorder()
	h.Config(rec, httptest.NewRequest(http.MethodGet, "/api/game/config", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
}
