package service

import (
	"net/http"
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageIsIdempotentPerClientKey(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)

	req := &contract.CreateMessageRequest{
		Content:   "who took the stapler",
		ClientKey: "ck-1111111111",
	}

	first, created, apierr := f.messages.CreateMessage(alice, collab.CollabID, req)
	require.Nil(t, apierr)
	assert.True(t, created)

	replay, created, apierr := f.messages.CreateMessage(alice, collab.CollabID, req)
	require.Nil(t, apierr)
	assert.False(t, created)
	assert.Equal(t, first.MessageID, replay.MessageID)

	messages, apierr := f.messages.GetMessages(alice, collab.CollabID)
	require.Nil(t, apierr)
	assert.Len(t, messages, 1)
}

func TestMessagesOrderedByInsertion(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)

	for i, content := range []string{"first", "second", "third"} {
		key := []string{"ck-aaaaaaaaaa", "ck-bbbbbbbbbb", "ck-cccccccccc"}[i]
		_, _, apierr := f.messages.CreateMessage(alice, collab.CollabID, &contract.CreateMessageRequest{
			Content:   content,
			ClientKey: key,
		})
		require.Nil(t, apierr)
	}

	messages, apierr := f.messages.GetMessages(alice, collab.CollabID)
	require.Nil(t, apierr)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestChatRequiresMembership(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	mallory := profileOf("mallory@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)

	_, apierr = f.messages.GetMessages(mallory, collab.CollabID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	_, _, apierr = f.messages.CreateMessage(mallory, collab.CollabID, &contract.CreateMessageRequest{
		Content:   "let me in",
		ClientKey: "ck-9999999999",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())
}

func TestViewersCanChatRead(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Household"})
	require.Nil(t, apierr)
	inviteMember(t, f, alice, bob.Email, collab.CollabID, "viewer")

	_, _, apierr = f.messages.CreateMessage(alice, collab.CollabID, &contract.CreateMessageRequest{
		Content:   "welcome",
		ClientKey: "ck-dddddddddd",
	})
	require.Nil(t, apierr)

	messages, apierr := f.messages.GetMessages(bob, collab.CollabID)
	require.Nil(t, apierr)
	assert.Len(t, messages, 1)
}
