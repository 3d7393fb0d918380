package service

import (
	"net/http"
	"strings"
	"testing"

	"eventide/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenListEvents(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	created, apierr := f.events.CreateEvent(alice, &contract.CreateEventRequest{
		Title:   "Dentist",
		Date:    "2026-09-03",
		Time:    "14:30",
		Details: "Bring insurance card",
	})
	require.Nil(t, apierr)
	assert.NotEmpty(t, created.EventID)
	assert.Equal(t, alice.Email, created.UserEmail)

	events, apierr := f.events.GetEvents(alice)
	require.Nil(t, apierr)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Title)
}

func TestUpdateEventPatchesOnlySentFields(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	created, apierr := f.events.CreateEvent(alice, &contract.CreateEventRequest{
		Title: "Standup",
		Date:  "2026-09-01",
		Time:  "09:00",
	})
	require.Nil(t, apierr)

	newTime := "09:30"
	updated, apierr := f.events.UpdateEvent(alice, created.EventID, &contract.UpdateEventRequest{Time: &newTime})
	require.Nil(t, apierr)
	assert.Equal(t, "09:30", updated.Time)
	assert.Equal(t, "Standup", updated.Title)
	assert.Equal(t, "2026-09-01", updated.Date)
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	_, apierr := f.events.CreateEvent(alice, &contract.CreateEventRequest{
		Title: "Bad",
		Date:  "03/09/2026",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestEventCollabWriteRequiresMembership(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")
	mallory := profileOf("mallory@example.com")

	collab, apierr := f.collabs.CreateCollab(alice, &contract.CreateCollabRequest{Name: "Work"})
	require.Nil(t, apierr)

	_, apierr = f.events.CreateEvent(mallory, &contract.CreateEventRequest{
		Title:    "Crash the party",
		CollabID: &collab.CollabID,
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())
}

func TestExportCalendarRendersEvents(t *testing.T) {
	f := newFixture(t)
	alice := profileOf("alice@example.com")

	_, apierr := f.events.CreateEvent(alice, &contract.CreateEventRequest{
		Title: "Dentist",
		Date:  "2026-09-03",
		Time:  "14:30",
	})
	require.Nil(t, apierr)

	ics, apierr := f.events.ExportCalendar(alice)
	require.Nil(t, apierr)
	assert.True(t, strings.Contains(ics, "BEGIN:VCALENDAR"))
	assert.True(t, strings.Contains(ics, "SUMMARY:Dentist"))
	assert.True(t, strings.Contains(ics, "END:VCALENDAR"))
}
