package service

import (
	"net/http"
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteInheritsNotebookScope(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Work"})
	require.Nil(t, apierr)
	inviteMember(t, f, alice, bob.Email, collab.CollabID, "editor")

	notebook, apierr := f.notes.CreateNotebook(alice, &contract.CreateNotebookRequest{
		Name:     "Meeting notes",
		CollabID: &collab.CollabID,
	})
	require.Nil(t, apierr)

	note, apierr := f.notes.CreateNote(alice, &contract.CreateNoteRequest{
		NotebookID: notebook.NotebookID,
		Title:      "Kickoff",
		Content:    "agenda",
	})
	require.Nil(t, apierr)
	require.NotNil(t, note.CollabID)
	assert.Equal(t, collab.CollabID, *note.CollabID)

	// Members see the shared notebook's notes
	notes, apierr := f.notes.GetNotes(bob, notebook.NotebookID)
	require.Nil(t, apierr)
	assert.Len(t, notes, 1)
}

func TestDeleteNotebookCascadesToNotes(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	notebook, apierr := f.notes.CreateNotebook(alice, &contract.CreateNotebookRequest{Name: "Journal"})
	require.Nil(t, apierr)

	_, apierr = f.notes.CreateNote(alice, &contract.CreateNoteRequest{
		NotebookID: notebook.NotebookID,
		Title:      "Day one",
	})
	require.Nil(t, apierr)

	apierr = f.notes.DeleteNotebook(alice, notebook.NotebookID)
	require.Nil(t, apierr)

	_, apierr = f.notes.GetNotes(alice, notebook.NotebookID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestUpdateNoteBumpsUpdatedAt(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	notebook, apierr := f.notes.CreateNotebook(alice, &contract.CreateNotebookRequest{Name: "Journal"})
	require.Nil(t, apierr)

	note, apierr := f.notes.CreateNote(alice, &contract.CreateNoteRequest{
		NotebookID: notebook.NotebookID,
		Title:      "Draft",
		Content:    "v1",
	})
	require.Nil(t, apierr)

	updated, apierr := f.notes.UpdateNote(alice, note.NoteID, &contract.UpdateNoteRequest{
		Content: strptr("v2"),
	})
	require.Nil(t, apierr)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, "Draft", updated.Title)
	assert.GreaterOrEqual(t, updated.UpdatedAt, note.UpdatedAt)
}

func TestNotebooksOfOthersAreInvisible(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	notebook, apierr := f.notes.CreateNotebook(alice, &contract.CreateNotebookRequest{Name: "Private"})
	require.Nil(t, apierr)

	_, apierr = f.notes.GetNotes(bob, notebook.NotebookID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	notebooks, apierr := f.notes.GetNotebooks(bob)
	require.Nil(t, apierr)
	assert.Empty(t, notebooks)
}
