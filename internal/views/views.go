// Package views holds pure, deterministic projections over resource
// collections. Nothing here touches the database or the clock directly;
// callers pass the reference time in.
package views

import (
	"sort"
	"time"

	"eventide/internal/contract"
	"eventide/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// SortProjects orders projects for display. The Inbox project always
// sorts first regardless of input order; the rest follow creation order,
// with the name as a stable tie-break.
func SortProjects(projects []*contract.ProjectResponse) []*contract.ProjectResponse {
	sorted := make([]*contract.ProjectResponse, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ai := a.Name == entity.InboxProjectName && a.CollabID == nil
		bi := b.Name == entity.InboxProjectName && b.CollabID == nil
		if ai != bi {
			return ai
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		return a.Name < b.Name
	})
	return sorted
}

// UpcomingEvents returns events dated within [today, today+days), sorted
// by date then start time. Indefinite and dateless events are excluded.
func UpcomingEvents(events []*contract.EventResponse, now time.Time, days int) []*contract.EventResponse {
	start := now.Format(dateLayout)
	end := now.AddDate(0, 0, days).Format(dateLayout)

	var upcoming []*contract.EventResponse
	for _, e := range events {
		if e.Indefinite || e.Date == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			continue
		}
		if e.Date >= start && e.Date < end {
			upcoming = append(upcoming, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})
	return upcoming
}

// GroupEventsByDay buckets events under their date string. Indefinite and
// dateless events land under the empty key so callers can render them in
// a separate section.
func GroupEventsByDay(events []*contract.EventResponse) map[string][]*contract.EventResponse {
	grouped := make(map[string][]*contract.EventResponse)
	for _, e := range events {
		key := e.Date
		if e.Indefinite {
			key = ""
		}
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}

// TodosDueToday returns open todos whose due date is the given day.
func TodosDueToday(todos []*contract.TodoResponse, now time.Time) []*contract.TodoResponse {
	today := now.Format(dateLayout)

	var due []*contract.TodoResponse
	for _, t := range todos {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if *t.DueDate == today {
			due = append(due, t)
		}
	}
	return due
}

// OverdueTodos returns open todos whose due date is strictly before the
// given day. Todos with malformed due dates are skipped.
func OverdueTodos(todos []*contract.TodoResponse, now time.Time) []*contract.TodoResponse {
	today := now.Format(dateLayout)

	var overdue []*contract.TodoResponse
	for _, t := range todos {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if _, err := time.Parse(dateLayout, *t.DueDate); err != nil {
			continue
		}
		if *t.DueDate < today {
			overdue = append(overdue, t)
		}
	}
	return overdue
}
