package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/abhisek/casetrack/internal/game"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsMaxMessage = 8 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Any origin may connect.
	CheckOrigin: func(*http.Request) bool { return true },
}

// WSMessage is a frame sent to WebSocket clients.
type WSMessage struct {
	Type  string      `json:"type"`
	State *game.State `json:"state,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Hub fans engine states out to connected WebSocket clients.
type Hub struct {
	engine *game.Engine
	logger *slog.Logger

	clients    map[*wsClient]struct{}
	register   chan *wsClient
	unregister chan *wsClient
	done       chan struct{}
}

func NewHub(e *game.Engine, logger *slog.Logger) *Hub {
	return &Hub{
		engine:     e,
		logger:     logger,
		clients:    make(map[*wsClient]struct{}),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	states, cancel := h.engine.Subscribe()
	defer cancel()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				c.stop()
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("ws client connected", "client", c.id, "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.stop()
				h.logger.Debug("ws client disconnected", "client", c.id, "clients", len(h.clients))
			}

		case s := <-states:
			data, err := json.Marshal(WSMessage{Type: "state", State: &s})
			if err != nil {
				h.logger.Error("encode ws state", "error", err)
				continue
			}
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					delete(h.clients, c)
					c.stop()
				}
			}
		}
	}
}

func (h *Hub) add(c *wsClient) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *wsClient) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

type wsClient struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	done chan struct{}
	once sync.Once
}

func (c *wsClient) stop() { c.once.Do(func() { close(c.done) }) }

// handleWS upgrades the connection, sends the current state, then streams
// every change. Incoming frames are action envelopes; a rejected action is
// answered on the same socket with an error frame.
func handleWS(hub *Hub, e *game.Engine, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("ws upgrade failed", "error", err)
			return
		}

		c := &wsClient{
			id:   uuid.NewString(),
			hub:  hub,
			conn: conn,
			send: make(chan []byte, 16),
			done: make(chan struct{}),
		}
		s := e.State()
		c.reply(WSMessage{Type: "state", State: &s})
		if !hub.add(c) {
			_ = conn.Close()
			return
		}

		go c.writePump()
		go c.readPump(e, logger)
	}
}

// reply queues a frame for this client only. It gives up rather than block
// when the buffer is full.
func (c *wsClient) reply(m WSMessage) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	select {
	case <-c.done:
	case c.send <- data:
	default:
	}
}

func (c *wsClient) readPump(e *game.Engine, logger *slog.Logger) {
	defer func() {
		c.hub.remove(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(wsMaxMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var env game.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("ws read failed", "client", c.id, "error", err)
			}
			return
		}
		a, err := env.Decode()
		if err != nil {
			c.reply(WSMessage{Type: "error", Error: err.Error()})
			continue
		}
		if _, changed := e.Dispatch(context.Background(), a); !changed {
			c.reply(WSMessage{Type: "error", Error: game.ErrNoChange.Error()})
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
