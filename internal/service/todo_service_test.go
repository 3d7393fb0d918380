package service

import (
	"net/http"
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoDefaultsToInboxAndCasual(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	todo, apierr := f.todos.CreateTodo(alice, &contract.CreateTodoRequest{Title: "Buy milk"})
	require.Nil(t, apierr)
	assert.Equal(t, "Casual", todo.Priority)
	assert.False(t, todo.Completed)
	assert.NotEmpty(t, todo.ProjectID)

	// The provisioned Inbox shows up in the project list, sorted first
	projects, apierr := f.projects.GetProjects(alice)
	require.Nil(t, apierr)
	require.NotEmpty(t, projects)
	assert.Equal(t, "Inbox", projects[0].Name)
	assert.Equal(t, projects[0].ProjectID, todo.ProjectID)
}

func TestCompletingTodoStampsCompletedAt(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	todo, apierr := f.todos.CreateTodo(alice, &contract.CreateTodoRequest{Title: "Ship it"})
	require.Nil(t, apierr)
	assert.Nil(t, todo.CompletedAt)

	done := true
	updated, apierr := f.todos.UpdateTodo(alice, todo.TodoID, &contract.UpdateTodoRequest{Completed: &done})
	require.Nil(t, apierr)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	undone := false
	reverted, apierr := f.todos.UpdateTodo(alice, todo.TodoID, &contract.UpdateTodoRequest{Completed: &undone})
	require.Nil(t, apierr)
	assert.False(t, reverted.Completed)
	assert.Nil(t, reverted.CompletedAt)
}

func TestUpdateTodoReplacesSubtasks(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	todo, apierr := f.todos.CreateTodo(alice, &contract.CreateTodoRequest{
		Title: "Plan trip",
		Subtasks: []contract.SubtaskPayload{
			{Name: "Book flights"},
			{Name: "Pack bags"},
		},
	})
	require.Nil(t, apierr)
	require.Len(t, todo.Subtasks, 2)

	updated, apierr := f.todos.UpdateTodo(alice, todo.TodoID, &contract.UpdateTodoRequest{
		Subtasks: []contract.SubtaskPayload{
			{Name: "Book flights", Completed: true},
		},
	})
	require.Nil(t, apierr)
	require.Len(t, updated.Subtasks, 1)
	assert.True(t, updated.Subtasks[0].Completed)

	fetched, apierr := f.todos.GetTodo(alice, todo.TodoID)
	require.Nil(t, apierr)
	assert.Len(t, fetched.Subtasks, 1)
}

func TestTodoVisibilityIsScopedToOwner(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	todo, apierr := f.todos.CreateTodo(alice, &contract.CreateTodoRequest{Title: "Secret task"})
	require.Nil(t, apierr)

	// Personal rows of other users read as not-found, never forbidden
	_, apierr = f.todos.GetTodo(bob, todo.TodoID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())

	todos, apierr := f.todos.GetTodos(bob)
	require.Nil(t, apierr)
	assert.Empty(t, todos)
}

func TestSharedTodoVisibleToMembers(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Work"})
	require.Nil(t, apierr)
	inviteMember(t, f, alice, bob.Email, collab.CollabID, "editor")

	_, apierr = f.todos.CreateTodo(alice, &contract.CreateTodoRequest{
		Title:    "Team task",
		CollabID: &collab.CollabID,
	})
	require.Nil(t, apierr)

	todos, apierr := f.todos.GetTodos(bob)
	require.Nil(t, apierr)
	require.Len(t, todos, 1)
	assert.Equal(t, "Team task", todos[0].Title)
	require.NotNil(t, todos[0].CollabName)
	assert.Equal(t, "Work", *todos[0].CollabName)
}

func TestViewerCannotEditSharedTodo(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	bob := profileOf("bob@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Work"})
	require.Nil(t, apierr)
	inviteMember(t, f, alice, bob.Email, collab.CollabID, "viewer")

	todo, apierr := f.todos.CreateTodo(alice, &contract.CreateTodoRequest{
		Title:    "Read only",
		CollabID: &collab.CollabID,
	})
	require.Nil(t, apierr)

	newTitle := "Hijacked"
	_, apierr = f.todos.UpdateTodo(bob, todo.TodoID, &contract.UpdateTodoRequest{Title: &newTitle})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())
}

func TestCreateTodoRejectsBlankTitle(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	_, apierr := f.todos.CreateTodo(alice, &contract.CreateTodoRequest{Title: "   "})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}
