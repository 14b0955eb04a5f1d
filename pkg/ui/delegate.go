package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// EventDelegate renders one gallery row: date, title, location, photo count.
type EventDelegate struct {
	Theme Theme
}

func (d EventDelegate) Height() int {
	return 1
}

func (d EventDelegate) Spacing() int {
	return 0
}

func (d EventDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d EventDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(EventItem)
	if !ok {
		return
	}
	t := d.Theme

	date := i.Event.Date
	if date == "" {
		date = "          "
	}
	dateCol := t.Renderer.NewStyle().Foreground(t.Subtext).Render(PadRight(date, 11))

	photos := ""
	if n := len(i.Event.PhotoURLs); n > 0 {
		photos = t.Renderer.NewStyle().Foreground(t.Secondary).Render(fmt.Sprintf(" 📷%d", n))
	}

	location := ""
	if i.Event.Location != "" {
		location = t.Renderer.NewStyle().Foreground(t.Muted).Render(" · " + i.Event.Location)
	}

	ago := ""
	if when, ok := i.Event.When(); ok {
		ago = t.Renderer.NewStyle().Foreground(t.Muted).Render(" · " + RelativeYears(when, time.Now()))
	}

	titleWidth := m.Width() - 20
	if titleWidth < 10 {
		titleWidth = 10
	}
	titleStyle := t.Renderer.NewStyle().Foreground(t.Text)
	if index == m.Index() {
		titleStyle = titleStyle.Foreground(t.Primary).Bold(true)
	}
	title := titleStyle.Render(TruncateString(i.Event.Title, titleWidth))

	prefix := "  "
	if index == m.Index() {
		prefix = t.Renderer.NewStyle().Foreground(t.Primary).Render("> ")
	}

	fmt.Fprint(w, prefix+strings.Join([]string{dateCol, title}, " ")+location+ago+photos)
}
