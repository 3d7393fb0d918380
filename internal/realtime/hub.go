package realtime

import (
	"context"
	"sync"
	"time"

	"eventide/internal/contract"

	"github.com/gorilla/websocket"
	"github.com/labstack/gommon/log"
)

const (
	// sendBuffer is how many envelopes a slow subscriber may lag behind
	// before being dropped. The feed makes no replay guarantee.
	sendBuffer = 32

	pingInterval = 1 * time.Minute
	writeWait    = 10 * time.Second
)

// Conn is the subset of *websocket.Conn the hub needs. Kept as an
// interface so tests can attach fake connections.
type Conn interface {
	WriteJSON(v any) error
	ReadMessage() (messageType int, p []byte, err error)
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

type subscriber struct {
	conn Conn
	send chan *contract.FeedEnvelope
	quit chan struct{}
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.quit)
		_ = s.conn.Close()
	})
}

// Hub fans out message inserts to the websocket subscribers of each
// collaboration space. Delivery follows publish order per space; there is
// no replay or catch-up for subscribers that attach late or fall behind.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*subscriber]struct{})}
}

// Attach registers a connection on a space's feed and blocks until the
// peer disconnects. Callers run it from the upgraded handler goroutine.
func (h *Hub) Attach(collabID string, conn Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan *contract.FeedEnvelope, sendBuffer),
		quit: make(chan struct{}),
	}

	h.mu.Lock()
	if h.subs[collabID] == nil {
		h.subs[collabID] = make(map[*subscriber]struct{})
	}
	h.subs[collabID][sub] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(collabID, sub)
	h.readLoop(collabID, sub)
}

// Publish delivers an envelope to every subscriber of the space. Slow
// subscribers are detached instead of blocking the publisher.
func (h *Hub) Publish(collabID string, env *contract.FeedEnvelope) {
	h.mu.Lock()
	var stale []*subscriber
	for sub := range h.subs[collabID] {
		select {
		case sub.send <- env:
		default:
			stale = append(stale, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range stale {
		h.detach(collabID, sub)
	}
}

// SubscriberCount reports how many connections follow a space's feed.
func (h *Hub) SubscriberCount(collabID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collabID])
}

// StartReaper pings all subscribers on an interval and detaches the dead
// ones. It blocks until the context is cancelled.
func (h *Hub) StartReaper(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	log.Info("Feed subscriber reaper started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping feed subscriber reaper...")
			return
		case <-ticker.C:
			h.sweep()
		}
	}
}

func (h *Hub) sweep() {
	h.mu.Lock()
	type pair struct {
		collabID string
		sub      *subscriber
	}
	var all []pair
	for collabID, subs := range h.subs {
		for sub := range subs {
			all = append(all, pair{collabID, sub})
		}
	}
	h.mu.Unlock()

	for _, p := range all {
		deadline := time.Now().Add(writeWait)
		if err := p.sub.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
			h.detach(p.collabID, p.sub)
		}
	}
}

func (h *Hub) writeLoop(collabID string, sub *subscriber) {
	for {
		select {
		case env := <-sub.send:
			if err := sub.conn.WriteJSON(env); err != nil {
				h.detach(collabID, sub)
				return
			}
		case <-sub.quit:
			return
		}
	}
}

func (h *Hub) readLoop(collabID string, sub *subscriber) {
	// Subscribers never send application data; the read loop only exists
	// to observe the close handshake.
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			h.detach(collabID, sub)
			return
		}
	}
}

func (h *Hub) detach(collabID string, sub *subscriber) {
	h.mu.Lock()
	if subs, ok := h.subs[collabID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subs, collabID)
		}
	}
	h.mu.Unlock()

	sub.close()
}
