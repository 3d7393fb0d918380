package client

import (
	"context"
	"errors"
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	items   []Event
	fail    bool
	created int
}

func (r *fakeRemote) List(ctx context.Context) ([]Event, error) {
	if r.fail {
		return nil, errors.New("network down")
	}
	return append([]Event{}, r.items...), nil
}

func (r *fakeRemote) Create(ctx context.Context, item Event) (Event, error) {
	if r.fail {
		return Event{}, errors.New("network down")
	}
	r.created++
	item.EventID = "srv-" + item.Title
	r.items = append(r.items, item)
	return item, nil
}

func (r *fakeRemote) Update(ctx context.Context, item Event) (Event, error) {
	if r.fail {
		return Event{}, errors.New("network down")
	}
	for i := range r.items {
		if r.items[i].EventID == item.EventID {
			r.items[i] = item
		}
	}
	return item, nil
}

func (r *fakeRemote) Delete(ctx context.Context, key string) error {
	if r.fail {
		return errors.New("network down")
	}
	kept := r.items[:0]
	for _, it := range r.items {
		if it.EventID != key {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

func event(id, title string) Event {
	e := Event{}
	e.EventID = id
	e.Title = title
	return e
}

func TestSetIdentityFetchesCollection(t *testing.T) {
	remote := &fakeRemote{items: []Event{event("e1", "Dentist")}}
	store := NewStore[Event](remote, nil)

	require.NoError(t, store.SetIdentity(context.Background(), "alice@example.com"))
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Dentist", items[0].Title)
}

func TestAddAppliesOptimisticallyThenConfirms(t *testing.T) {
	remote := &fakeRemote{}
	store := NewStore[Event](remote, nil)
	require.NoError(t, store.SetIdentity(context.Background(), "alice@example.com"))

	op := store.Add(context.Background(), event("tmp-1", "Dentist"))
	assert.Equal(t, OpApplied, op.State)
	assert.Equal(t, "srv-Dentist", op.Key)

	items := store.Items()
	require.Len(t, items, 1)
	// The provisional id was swapped for the server-assigned one
	assert.Equal(t, "srv-Dentist", items[0].EventID)
}

func TestFailedAddRollsBackToSnapshot(t *testing.T) {
	remote := &fakeRemote{items: []Event{event("e1", "Dentist")}}
	var notified error
	store := NewStore[Event](remote, func(err error) { notified = err })
	require.NoError(t, store.SetIdentity(context.Background(), "alice@example.com"))

	remote.fail = true
	op := store.Add(context.Background(), event("tmp-2", "Gym"))

	assert.Equal(t, OpRolledBack, op.State)
	require.Error(t, op.Err)
	require.Error(t, notified)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "e1", items[0].EventID)
}

func TestFailedUpdateRollsBack(t *testing.T) {
	remote := &fakeRemote{items: []Event{event("e1", "Dentist")}}
	store := NewStore[Event](remote, nil)
	require.NoError(t, store.SetIdentity(context.Background(), "alice@example.com"))

	remote.fail = true
	op := store.Update(context.Background(), event("e1", "Renamed"))

	assert.Equal(t, OpRolledBack, op.State)
	assert.Equal(t, "Dentist", store.Items()[0].Title)
}

func TestFailedDeleteRollsBack(t *testing.T) {
	remote := &fakeRemote{items: []Event{event("e1", "Dentist")}}
	store := NewStore[Event](remote, nil)
	require.NoError(t, store.SetIdentity(context.Background(), "alice@example.com"))

	remote.fail = true
	op := store.Delete(context.Background(), "e1")

	assert.Equal(t, OpRolledBack, op.State)
	require.Len(t, store.Items(), 1)
}

func TestDeleteAppliesLocally(t *testing.T) {
	remote := &fakeRemote{items: []Event{event("e1", "Dentist"), event("e2", "Gym")}}
	store := NewStore[Event](remote, nil)
	require.NoError(t, store.SetIdentity(context.Background(), "alice@example.com"))

	op := store.Delete(context.Background(), "e1")
	assert.Equal(t, OpApplied, op.State)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "e2", items[0].EventID)
}

type fakeChatRemote struct {
	history []*contract.MessageResponse
	fail    bool
	sends   int
}

func (r *fakeChatRemote) History(ctx context.Context, collabID string) ([]*contract.MessageResponse, error) {
	return append([]*contract.MessageResponse{}, r.history...), nil
}

func (r *fakeChatRemote) Send(ctx context.Context, collabID string, req *contract.CreateMessageRequest) (*contract.MessageResponse, error) {
	if r.fail {
		return nil, errors.New("network down")
	}
	r.sends++
	msg := &contract.MessageResponse{
		MessageID: "m1",
		CollabID:  collabID,
		Content:   req.Content,
		ClientKey: req.ClientKey,
	}
	r.history = append(r.history, msg)
	return msg, nil
}

func TestChatSendConfirmsOptimisticRow(t *testing.T) {
	remote := &fakeChatRemote{}
	chat := NewChatStore(remote, "c1", nil)
	require.NoError(t, chat.Load(context.Background()))

	op := chat.Send(context.Background(), "alice@example.com", "hello")
	assert.Equal(t, OpApplied, op.State)

	messages := chat.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "m1", messages[0].MessageID)
	assert.NotEmpty(t, messages[0].ClientKey)
}

func TestChatFeedDedupesOwnSends(t *testing.T) {
	remote := &fakeChatRemote{}
	chat := NewChatStore(remote, "c1", nil)
	require.NoError(t, chat.Load(context.Background()))

	chat.Send(context.Background(), "alice@example.com", "hello")
	sent := chat.Messages()[0]

	// The feed echoes the same row back; it must not duplicate
	chat.ApplyFeed(sent)
	assert.Len(t, chat.Messages(), 1)

	// A message from someone else lands normally
	chat.ApplyFeed(&contract.MessageResponse{
		MessageID: "m2",
		CollabID:  "c1",
		UserEmail: "bob@example.com",
		Content:   "hi back",
		ClientKey: "ck-bob-000001",
	})
	assert.Len(t, chat.Messages(), 2)
}

func TestChatFailedSendRollsBack(t *testing.T) {
	remote := &fakeChatRemote{fail: true}
	var notified error
	chat := NewChatStore(remote, "c1", func(err error) { notified = err })
	require.NoError(t, chat.Load(context.Background()))

	op := chat.Send(context.Background(), "alice@example.com", "lost")
	assert.Equal(t, OpRolledBack, op.State)
	require.Error(t, notified)
	assert.Empty(t, chat.Messages())
}
