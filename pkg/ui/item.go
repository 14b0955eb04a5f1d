package ui

import (
	"fmt"

	"github.com/nuwandm/mahagedara/pkg/model"
)

// EventItem wraps model.Event to implement list.Item for the gallery.
type EventItem struct {
	Event model.Event
}

func (i EventItem) Title() string {
	return i.Event.Title
}

func (i EventItem) Description() string {
	return fmt.Sprintf("%s • %s", i.Event.Date, i.Event.Location)
}

func (i EventItem) FilterValue() string {
	return i.Event.Title + " " + i.Event.Location + " " + i.Event.Description
}
