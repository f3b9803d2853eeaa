package engine

import (
	"strings"
	"time"
)

// ReminderWindow is how far before its reminder time an item becomes due
// for notification.
const ReminderWindow = 60 * time.Second

type ChecklistInput struct {
	Title       string
	Description string
	DueDate     string
	DueTime     string
	Priority    Priority
	Tags        []string
	ReminderAt  *time.Time
}

func (s *Service) CreateChecklistItem(in ChecklistInput) (*ChecklistItem, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	prio := in.Priority
	if !prio.IsValid() {
		prio = PriorityMedium
	}

	var item ChecklistItem
	err := s.mutate(func(st *State) error {
		item = ChecklistItem{
			ID:          s.newID("check"),
			Title:       strings.TrimSpace(in.Title),
			Description: in.Description,
			DueDate:     in.DueDate,
			DueTime:     in.DueTime,
			Priority:    prio,
			Tags:        append([]string(nil), in.Tags...),
			ReminderAt:  in.ReminderAt,
			CreatedAt:   s.now(),
		}
		st.Checklist = append(st.Checklist, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type ChecklistUpdate struct {
	Title       *string
	Description *string
	DueDate     *string
	DueTime     *string
	Priority    *Priority
	Tags        *[]string
	ReminderAt  **time.Time
}

func (s *Service) UpdateChecklistItem(id string, up ChecklistUpdate) (*ChecklistItem, error) {
	var item ChecklistItem
	err := s.mutate(func(st *State) error {
		it := st.checklistByID(id)
		if it == nil {
			return NotFoundError{Kind: "checklist item", ID: id}
		}
		if up.Title != nil {
			if strings.TrimSpace(*up.Title) == "" {
				return ValidationError{Field: "title", Reason: "must not be empty"}
			}
			it.Title = strings.TrimSpace(*up.Title)
		}
		if up.Description != nil {
			it.Description = *up.Description
		}
		if up.DueDate != nil {
			it.DueDate = *up.DueDate
		}
		if up.DueTime != nil {
			it.DueTime = *up.DueTime
		}
		if up.Priority != nil {
			if !up.Priority.IsValid() {
				return ValidationError{Field: "priority", Reason: "must be low, medium or high"}
			}
			it.Priority = *up.Priority
		}
		if up.Tags != nil {
			it.Tags = append([]string(nil), (*up.Tags)...)
		}
		if up.ReminderAt != nil {
			it.ReminderAt = *up.ReminderAt
			it.ReminderFired = false
		}
		item = *it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) ToggleChecklistItem(id string) (*ChecklistItem, error) {
	var item ChecklistItem
	err := s.mutate(func(st *State) error {
		it := st.checklistByID(id)
		if it == nil {
			return NotFoundError{Kind: "checklist item", ID: id}
		}
		it.Completed = !it.Completed
		if it.Completed {
			now := s.now()
			it.CompletedAt = &now
		} else {
			it.CompletedAt = nil
		}
		item = *it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) DeleteChecklistItem(id string) error {
	return s.mutate(func(st *State) error {
		for i := range st.Checklist {
			if st.Checklist[i].ID == id {
				st.Checklist = append(st.Checklist[:i], st.Checklist[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "checklist item", ID: id}
	})
}

func (s *Service) ChecklistItems() []ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChecklistItem(nil), s.state.Checklist...)
}

// DueReminders returns the items whose reminder time falls inside
// [reminderAt-60s, reminderAt] around now and marks them fired, so each
// reminder is delivered exactly once. The fired flag lives in the snapshot,
// which keeps the guarantee across restarts.
func (s *Service) DueReminders(now time.Time) ([]ChecklistItem, error) {
	var due []ChecklistItem
	err := s.mutate(func(st *State) error {
		for i := range st.Checklist {
			it := &st.Checklist[i]
			if it.ReminderAt == nil || it.ReminderFired || it.Completed {
				continue
			}
			from := it.ReminderAt.Add(-ReminderWindow)
			if now.Before(from) || now.After(*it.ReminderAt) {
				continue
			}
			it.ReminderFired = true
			due = append(due, *it)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return due, nil
}
