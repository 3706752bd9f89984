package game

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/badmarinesstudio/horizon-web/internal/auth"
	"github.com/badmarinesstudio/horizon-web/internal/logging"
)

const writeTimeout = 10 * time.Second

// tokenRefresher is the controller slice the bridge needs: a token that
// is valid long enough for the game to boot with.
type tokenRefresher interface {
	RefreshAuth(ctx context.Context) (string, bool)
}

// Handler exposes the game boot and auth bridge endpoints consumed by the
// embedded client: the build config, a one-shot token fetch, and a
// websocket that pushes token changes (including the empty token on
// logout) so the running game drops its session immediately.
type Handler struct {
	service   *Service
	tokens    *auth.TokenCache
	state     *auth.State
	refresher tokenRefresher
	log       logging.Logger
	upgrader  websocket.Upgrader
}

func NewHandler(service *Service, tokens *auth.TokenCache, state *auth.State, refresher tokenRefresher, log logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{
		service:   service,
		tokens:    tokens,
		state:     state,
		refresher: refresher,
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The bridge only talks to the game served from this process.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Mount registers the bridge routes on an /api subrouter.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/game/config", h.Config)
	r.Get("/bridge/token", h.Token)
	r.Get("/bridge/ws", h.WS)
}

// Config serves the build configuration for the active version. Private:
// the play page is the only consumer and it requires a session.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	if !h.state.Authenticated() {
		http.Error(w, "not authenticated", http.StatusForbidden)
		return
	}
	cfg, err := h.service.Config(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "game config", "err", err)
		http.Error(w, "game configuration unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

type tokenMessage struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// Token hands a fresh access token to the game. Forbidden until the
// session is fully established (token and profile both present). The
// token goes through the silent-refresh path first so the game never
// boots with one about to expire.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	if !h.state.Authenticated() {
		http.Error(w, "not authenticated", http.StatusForbidden)
		return
	}
	token, ok := h.refresher.RefreshAuth(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, tokenMessage{Type: "token", Token: token})
}

// WS upgrades to a websocket and pushes every token change until the peer
// disconnects. The initial token is sent right after the upgrade.
func (h *Handler) WS(w http.ResponseWriter, r *http.Request) {
	if !h.state.Authenticated() {
		http.Error(w, "not authenticated", http.StatusForbidden)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn(r.Context(), "bridge upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	updates := make(chan string, 8)
	unsub := h.tokens.Subscribe(func(token string) {
		select {
		case updates <- token:
		default:
			// The peer is not draining; it will resync from the next send.
		}
	})
	defer unsub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.send(conn, h.tokens.Get()); err != nil {
		return
	}
	for {
		select {
		case token := <-updates:
			if err := h.send(conn, token); err != nil {
				return
			}
			if token == "" {
				// Session ended; the game has been told to drop it.
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, token string) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(tokenMessage{Type: "token", Token: token}); err != nil {
		h.log.Warn(context.Background(), "bridge write failed", "err", err)
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
