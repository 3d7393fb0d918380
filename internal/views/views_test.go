package views

import (
	"testing"
	"time"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortProjectsPinsInboxFirst(t *testing.T) {
	projects := []*contract.ProjectResponse{
		{ProjectID: "p2", Name: "Zebra", CreatedAt: "2026-01-02T00:00:00Z"},
		{ProjectID: "p3", Name: "Apple", CreatedAt: "2026-01-03T00:00:00Z"},
		{ProjectID: "p1", Name: "Inbox", CreatedAt: "2026-01-05T00:00:00Z"},
	}

	sorted := SortProjects(projects)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Inbox", sorted[0].Name)
	assert.Equal(t, "Zebra", sorted[1].Name)
	assert.Equal(t, "Apple", sorted[2].Name)

	// Input order does not matter
	reversed := SortProjects([]*contract.ProjectResponse{projects[2], projects[1], projects[0]})
	assert.Equal(t, "Inbox", reversed[0].Name)
}

func TestSortProjectsIgnoresSharedInbox(t *testing.T) {
	collabID := "c1"
	projects := []*contract.ProjectResponse{
		{ProjectID: "p2", Name: "Inbox", CollabID: &collabID, CreatedAt: "2026-01-01T00:00:00Z"},
		{ProjectID: "p1", Name: "Inbox", CreatedAt: "2026-01-05T00:00:00Z"},
	}

	sorted := SortProjects(projects)
	// Only the personal Inbox gets the pin
	assert.Nil(t, sorted[0].CollabID)
}

func TestUpcomingEventsWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	events := []*contract.EventResponse{
		{EventID: "past", Date: "2026-08-28"},
		{EventID: "today-late", Date: "2026-08-29", Time: "18:00"},
		{EventID: "today-early", Date: "2026-08-29", Time: "08:00"},
		{EventID: "in-window", Date: "2026-09-03"},
		{EventID: "out-of-window", Date: "2026-09-05"},
		{EventID: "indefinite", Date: "2026-08-30", Indefinite: true},
		{EventID: "dateless"},
	}

	upcoming := UpcomingEvents(events, now, 7)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "today-early", upcoming[0].EventID)
	assert.Equal(t, "today-late", upcoming[1].EventID)
	assert.Equal(t, "in-window", upcoming[2].EventID)
}

func TestGroupEventsByDay(t *testing.T) {
	events := []*contract.EventResponse{
		{EventID: "a", Date: "2026-08-29"},
		{EventID: "b", Date: "2026-08-29"},
		{EventID: "c", Date: "2026-08-30"},
		{EventID: "d", Indefinite: true, Date: "2026-08-30"},
	}

	grouped := GroupEventsByDay(events)
	assert.Len(t, grouped["2026-08-29"], 2)
	assert.Len(t, grouped["2026-08-30"], 1)
	assert.Len(t, grouped[""], 1)
}

func TestTodosDueTodayAndOverdue(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	due := func(s string) *string { return &s }

	todos := []*contract.TodoResponse{
		{TodoID: "today", DueDate: due("2026-08-29")},
		{TodoID: "yesterday", DueDate: due("2026-08-28")},
		{TodoID: "done", DueDate: due("2026-08-28"), Completed: true},
		{TodoID: "tomorrow", DueDate: due("2026-08-30")},
		{TodoID: "no-due"},
	}

	dueToday := TodosDueToday(todos, now)
	require.Len(t, dueToday, 1)
	assert.Equal(t, "today", dueToday[0].TodoID)

	overdue := OverdueTodos(todos, now)
	require.Len(t, overdue, 1)
	assert.Equal(t, "yesterday", overdue[0].TodoID)
}
