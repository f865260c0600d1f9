// Package spectate streams arena snapshots to websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type stateMessage struct {
	Type       string `json:"type"`
	ServerTime int64  `json:"serverTime"`
	State      any    `json:"state"`
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub fans the latest published state out to every connected viewer. Publish
// never blocks the caller; Run does the writing.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]*subscriber
	latest      []byte
	pending     any
	notify      chan struct{}
	nextID      atomic.Uint64

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint64]*subscriber),
		notify:      make(chan struct{}, 1),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Publish replaces the pending state. Only the newest state is sent when
// viewers are slower than the simulation.
func (h *Hub) Publish(state any) {
	h.mu.Lock()
	h.pending = state
	h.mu.Unlock()

	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// Run broadcasts published states until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-h.notify:
		}

		h.mu.Lock()
		state := h.pending
		h.pending = nil
		h.mu.Unlock()
		if state != nil {
			h.Broadcast(state)
		}
	}
}

// Broadcast encodes state and writes it to every viewer. Viewers that fail
// the write are dropped.
func (h *Hub) Broadcast(state any) {
	data, err := json.Marshal(stateMessage{Type: "state", ServerTime: time.Now().UnixMilli(), State: state})
	if err != nil {
		log.Printf("spectate: marshal state: %v", err)
		return
	}

	h.mu.Lock()
	h.latest = data
	subs := make(map[uint64]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.write(data); err != nil {
			log.Printf("spectate: drop viewer %d: %v", id, err)
			h.disconnect(id)
		}
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// ServeHTTP upgrades the request and keeps the viewer subscribed until it
// disconnects. Viewers are read-only; anything they send is discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade failed: %v", err)
		return
	}

	id := h.nextID.Add(1)
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[id] = sub
	latest := h.latest
	h.mu.Unlock()

	if latest != nil {
		if err := sub.write(latest); err != nil {
			h.disconnect(id)
			return
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.disconnect(id)
			return
		}
	}
}

func (h *Hub) disconnect(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	delete(h.subscribers, id)
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	subs := h.subscribers
	h.subscribers = make(map[uint64]*subscriber)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "arena closed")
		sub.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		sub.mu.Unlock()
		sub.conn.Close()
	}
}

// Serve listens on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	log.Printf("spectate: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
