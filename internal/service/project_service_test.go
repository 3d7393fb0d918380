package service

import (
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectsProvisionsInboxOnce(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	first, apierr := f.projects.GetProjects(alice)
	require.Nil(t, apierr)
	require.Len(t, first, 1)
	assert.Equal(t, "Inbox", first[0].Name)

	second, apierr := f.projects.GetProjects(alice)
	require.Nil(t, apierr)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ProjectID, second[0].ProjectID)
}

func TestInboxSortsFirst(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	_, apierr := f.projects.CreateProject(alice, &contract.CreateProjectRequest{Name: "Aardvarks"})
	require.Nil(t, apierr)

	projects, apierr := f.projects.GetProjects(alice)
	require.Nil(t, apierr)
	require.Len(t, projects, 2)
	assert.Equal(t, "Inbox", projects[0].Name)
	assert.Equal(t, "Aardvarks", projects[1].Name)
}

func TestDeleteProjectCascadesToTodos(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	project, apierr := f.projects.CreateProject(alice, &contract.CreateProjectRequest{Name: "Errands"})
	require.Nil(t, apierr)

	_, apierr = f.todos.CreateTodo(alice, &contract.CreateTodoRequest{
		Title:     "Post office",
		ProjectID: project.ProjectID,
	})
	require.Nil(t, apierr)

	apierr = f.projects.DeleteProject(alice, project.ProjectID)
	require.Nil(t, apierr)

	todos, apierr := f.todos.GetTodos(alice)
	require.Nil(t, apierr)
	assert.Empty(t, todos)
}
