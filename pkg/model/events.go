package model

import (
	"fmt"
	"time"
)

// EventDateLayout is the date format used in family.json event records.
const EventDateLayout = "2006-01-02"

// Event is one entry in the companion events gallery: a wedding, reunion,
// anniversary and so on, optionally linked to people in the tree.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	PhotoURLs   []string `json:"photos,omitempty"`
	PersonIDs   []string `json:"people,omitempty"`
}

// Clone creates a deep copy of the event.
func (e Event) Clone() Event {
	clone := e
	if e.PhotoURLs != nil {
		clone.PhotoURLs = make([]string, len(e.PhotoURLs))
		copy(clone.PhotoURLs, e.PhotoURLs)
	}
	if e.PersonIDs != nil {
		clone.PersonIDs = make([]string, len(e.PersonIDs))
		copy(clone.PersonIDs, e.PersonIDs)
	}
	return clone
}

// Validate checks if the event data is logically valid.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event ID cannot be empty")
	}
	if e.Title == "" {
		return fmt.Errorf("event %s: title cannot be empty", e.ID)
	}
	if e.Date != "" {
		if _, err := time.Parse(EventDateLayout, e.Date); err != nil {
			return fmt.Errorf("event %s: invalid date %q (want YYYY-MM-DD)", e.ID, e.Date)
		}
	}
	return nil
}

// When parses the event date. The second return is false when no date is
// recorded or it does not parse.
func (e *Event) When() (time.Time, bool) {
	if e.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(EventDateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Involves returns true if the event lists the given person id.
func (e *Event) Involves(personID string) bool {
	for _, id := range e.PersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}
