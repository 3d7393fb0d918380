package client

import (
	"context"
	"sync"

	"eventide/internal/contract"

	"github.com/google/uuid"
)

// ChatRemote is the server side of one collaboration's chat.
type ChatRemote interface {
	History(ctx context.Context, collabID string) ([]*contract.MessageResponse, error)
	Send(ctx context.Context, collabID string, req *contract.CreateMessageRequest) (*contract.MessageResponse, error)
}

// ChatStore holds the message list for one collaboration. Sends are
// optimistic with a generated client key; the same key travels in the
// request and in the realtime feed envelope, so deliveries of a message
// this client already applied are dropped instead of duplicated.
type ChatStore struct {
	mu       sync.Mutex
	remote   ChatRemote
	collabID string
	messages []*contract.MessageResponse
	seen     map[string]struct{}
	onError  func(error)
}

func NewChatStore(remote ChatRemote, collabID string, onError func(error)) *ChatStore {
	if onError == nil {
		onError = func(error) {}
	}
	return &ChatStore{
		remote:   remote,
		collabID: collabID,
		seen:     make(map[string]struct{}),
		onError:  onError,
	}
}

// Load fetches the full history, replacing local state.
func (s *ChatStore) Load(ctx context.Context) error {
	messages, err := s.remote.History(ctx, s.collabID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.messages = messages
	s.seen = make(map[string]struct{}, len(messages))
	for _, m := range messages {
		if m.ClientKey != "" {
			s.seen[m.ClientKey] = struct{}{}
		}
	}
	s.mu.Unlock()
	return nil
}

// Send inserts the message locally and posts it. The generated client
// key makes the post idempotent: a retry after a lost response returns
// the stored row instead of inserting twice.
func (s *ChatStore) Send(ctx context.Context, userEmail, content string) OpResult {
	clientKey := uuid.NewString()
	op := OpResult{Kind: OpAdd, Key: clientKey, State: OpPending}

	optimistic := &contract.MessageResponse{
		CollabID:  s.collabID,
		UserEmail: userEmail,
		Content:   content,
		ClientKey: clientKey,
	}

	s.mu.Lock()
	snapshot := s.messages
	s.messages = append(append([]*contract.MessageResponse{}, s.messages...), optimistic)
	s.seen[clientKey] = struct{}{}
	s.mu.Unlock()

	confirmed, err := s.remote.Send(ctx, s.collabID, &contract.CreateMessageRequest{
		Content:   content,
		ClientKey: clientKey,
	})
	if err != nil {
		s.mu.Lock()
		s.messages = snapshot
		delete(s.seen, clientKey)
		s.mu.Unlock()
		s.onError(err)
		return resolve(op, err)
	}

	s.mu.Lock()
	for i, m := range s.messages {
		if m.ClientKey == clientKey {
			s.messages[i] = confirmed
			break
		}
	}
	s.mu.Unlock()

	op.Key = confirmed.MessageID
	return resolve(op, nil)
}

// ApplyFeed folds one realtime delivery into local state. Messages whose
// client key was already applied (this client's own sends) are dropped.
func (s *ChatStore) ApplyFeed(msg *contract.MessageResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ClientKey != "" {
		if _, ok := s.seen[msg.ClientKey]; ok {
			return
		}
		s.seen[msg.ClientKey] = struct{}{}
	}
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the current message list.
func (s *ChatStore) Messages() []*contract.MessageResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]*contract.MessageResponse, len(s.messages))
	copy(messages, s.messages)
	return messages
}
