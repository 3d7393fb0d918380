package realtime

import (
	"errors"
	"testing"
	"time"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn blocks reads until Close, and records every written envelope.
type fakeConn struct {
	written  chan *contract.FeedEnvelope
	closed   chan struct{}
	pingErr  error
	writeErr error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		written: make(chan *contract.FeedEnvelope, 16),
		closed:  make(chan struct{}),
	}
}

func (c *fakeConn) WriteJSON(v any) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	if env, ok := v.(*contract.FeedEnvelope); ok {
		c.written <- env
	}
	return nil
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	<-c.closed
	return 0, nil, errors.New("connection closed")
}

func (c *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return c.pingErr
}

func (c *fakeConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
	return nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()

	go hub.Attach("c1", conn)
	waitFor(t, func() bool { return hub.SubscriberCount("c1") == 1 })

	env := &contract.FeedEnvelope{Type: contract.FeedMessageCreated, Data: "hello"}
	hub.Publish("c1", env)

	select {
	case got := <-conn.written:
		assert.Equal(t, contract.FeedMessageCreated, got.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("envelope never delivered")
	}
}

func TestPublishIsScopedToSpace(t *testing.T) {
	hub := NewHub()
	c1 := newFakeConn()
	c2 := newFakeConn()

	go hub.Attach("c1", c1)
	go hub.Attach("c2", c2)
	waitFor(t, func() bool {
		return hub.SubscriberCount("c1") == 1 && hub.SubscriberCount("c2") == 1
	})

	hub.Publish("c1", &contract.FeedEnvelope{Type: contract.FeedMessageCreated})

	select {
	case <-c1.written:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber of c1 missed the envelope")
	}

	select {
	case <-c2.written:
		t.Fatal("envelope leaked into another space")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClosedConnectionDetaches(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()

	go hub.Attach("c1", conn)
	waitFor(t, func() bool { return hub.SubscriberCount("c1") == 1 })

	require.NoError(t, conn.Close())
	waitFor(t, func() bool { return hub.SubscriberCount("c1") == 0 })
}

func TestSweepDropsDeadSubscribers(t *testing.T) {
	hub := NewHub()
	dead := newFakeConn()
	dead.pingErr = errors.New("broken pipe")
	alive := newFakeConn()

	go hub.Attach("c1", dead)
	go hub.Attach("c1", alive)
	waitFor(t, func() bool { return hub.SubscriberCount("c1") == 2 })

	hub.sweep()
	waitFor(t, func() bool { return hub.SubscriberCount("c1") == 1 })
}

func TestDeliveryFollowsPublishOrder(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn()

	go hub.Attach("c1", conn)
	waitFor(t, func() bool { return hub.SubscriberCount("c1") == 1 })

	for i := 0; i < 5; i++ {
		hub.Publish("c1", &contract.FeedEnvelope{Type: contract.FeedMessageCreated, Data: i})
	}

	for i := 0; i < 5; i++ {
		select {
		case got := <-conn.written:
			assert.Equal(t, i, got.Data)
		case <-time.After(2 * time.Second):
			t.Fatalf("envelope %d never delivered", i)
		}
	}
}
