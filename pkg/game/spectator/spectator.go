// Package spectator serves the live game over websockets so a browser or a
// second terminal can watch a run. Watchers are read-only: the feed carries
// one ASCII frame per completed turn and no input flows back.
package spectator

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"gloomdeep/pkg/game/renderer"
	"gloomdeep/pkg/game/state"
)

const uriWatch = "/watch"

// Hub broadcasts frames to every connected watcher
type Hub struct {
	upgrader *websocket.Upgrader
	router   *way.Router

	mu      sync.Mutex
	clients map[*websocket.Conn]chan string

	// lastFrame is replayed to watchers that connect mid-run
	lastFrame string
}

// NewHub creates a hub with no watchers
func NewHub() *Hub {
	h := &Hub{
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan string),
	}
	h.routes()
	return h
}

func (h *Hub) routes() {
	h.router = way.NewRouter()
	h.router.HandleFunc("GET", uriWatch, h.handleWatch)
}

// Serve listens on addr until the process exits. Run it in a goroutine.
func (h *Hub) Serve(addr string) {
	log.WithField("addr", addr).Info("spectator server listening")
	if err := http.ListenAndServe(addr, h.router); err != nil {
		log.WithError(err).Error("spectator server stopped")
	}
}

// handleWatch upgrades the connection and streams frames until the watcher
// disconnects
func (h *Hub) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	frames := make(chan string, 4)

	h.mu.Lock()
	h.clients[conn] = frames
	replay := h.lastFrame
	h.mu.Unlock()

	log.WithField("remote", conn.RemoteAddr()).Info("watcher connected")

	if replay != "" {
		frames <- replay
	}

	go h.loopWrite(conn, frames)
	go h.loopRead(conn)
}

// loopWrite pushes frames to one watcher
func (h *Hub) loopWrite(conn *websocket.Conn, frames <-chan string) {
	for frame := range frames {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			h.drop(conn)
			return
		}
	}
}

// loopRead discards watcher input and notices disconnects
func (h *Hub) loopRead(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(conn)
			return
		}
	}
}

// drop removes a watcher
func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if frames, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(frames)
	}
	h.mu.Unlock()
	conn.Close()
	log.WithField("remote", conn.RemoteAddr()).Info("watcher disconnected")
}

// Broadcast renders the current frame and queues it for every watcher.
// Wire it as a session observer. Slow watchers skip frames rather than
// stalling the game.
func (h *Hub) Broadcast(g *state.Game) {
	frame := strings.Join(renderer.PlainFrame(g), "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastFrame = frame
	for _, frames := range h.clients {
		select {
		case frames <- frame:
		default:
		}
	}
}
