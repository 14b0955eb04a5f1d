package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nuwandm/mahagedara/pkg/loader"
	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
	"github.com/nuwandm/mahagedara/pkg/stats"
)

// DataChangedMsg is sent from outside (the file watcher) when the data file
// changed on disk; the model responds by reloading.
type DataChangedMsg struct{}

// dataReloadedMsg carries the result of an async reload.
type dataReloadedMsg struct {
	data *model.FamilyData
	err  error
}

// focusArea identifies which main pane receives navigation keys.
type focusArea int

const (
	focusTree focusArea = iota
	focusGallery
)

// Model is the root bubbletea model: an immutable family snapshot plus all
// mutable presentation state (filters, expansion, cursor, overlays).
type Model struct {
	data     *model.FamilyData
	dataPath string
	theme    Theme

	filters  query.Filters
	expanded map[string]bool

	rows   []treeRow
	cursor int
	tree   treePane

	detail  DetailModel
	gallery list.Model

	searchInput textinput.Model
	searching   bool

	// galleryPerson narrows the gallery to events involving the selected
	// person.
	galleryPerson bool

	jumper     JumperModel
	showJumper bool

	tagPicker     TagPickerModel
	showTagPicker bool

	statsPanel StatsPanelModel
	help       HelpOverlayModel

	focus focusArea

	lineage    []string
	lineageSet map[string]bool

	width  int
	height int
	status string
	ready  bool
}

// NewModel creates the root model over a loaded family snapshot. dataPath is
// kept for reloads.
func NewModel(data *model.FamilyData, dataPath string, theme Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Search name or tag..."
	ti.CharLimit = 64
	ti.Width = 32

	gallery := list.New(eventItems(data), EventDelegate{Theme: theme}, 40, 10)
	gallery.Title = "Events"
	gallery.SetShowStatusBar(false)
	gallery.SetFilteringEnabled(false)
	gallery.SetShowHelp(false)

	m := Model{
		data:        data,
		dataPath:    dataPath,
		theme:       theme,
		filters:     query.NewFilters(),
		expanded:    make(map[string]bool),
		tree:        newTreePane(theme),
		detail:      NewDetailModel(theme),
		gallery:     gallery,
		searchInput: ti,
		statsPanel:  NewStatsPanelModel(theme),
		help:        NewHelpOverlayModel(theme),
	}
	m.statsPanel.SetSummary(stats.Compute(data))
	m.expandAll()
	m.rebuildRows()
	m.refreshSelection()
	return m
}

// eventItems builds the gallery items sorted by date, dated entries first
// in chronological order, undated entries after in file order.
func eventItems(data *model.FamilyData) []list.Item {
	events := make([]model.Event, len(data.Events))
	copy(events, data.Events)
	sort.SliceStable(events, func(i, j int) bool {
		ti, iok := events[i].When()
		tj, jok := events[j].When()
		if iok != jok {
			return iok
		}
		return iok && ti.Before(tj)
	})

	items := make([]list.Item, len(events))
	for i, ev := range events {
		items[i] = EventItem{Event: ev}
	}
	return items
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// reloadCmd re-reads the data file off the update loop.
func (m Model) reloadCmd() tea.Cmd {
	path := m.dataPath
	return func() tea.Msg {
		data, err := loader.LoadFamilyFromFile(path)
		return dataReloadedMsg{data: data, err: err}
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case DataChangedMsg:
		return m, m.reloadCmd()

	case dataReloadedMsg:
		if msg.err != nil {
			// keep the last good snapshot
			m.status = "reload failed: " + msg.err.Error()
			return m, nil
		}
		m.applySnapshot(msg.data)
		m.status = "data reloaded"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applySnapshot swaps in a fresh snapshot, keeping as much presentation
// state as still applies.
func (m *Model) applySnapshot(data *model.FamilyData) {
	m.data = data
	m.statsPanel.SetSummary(stats.Compute(data))
	m.refreshGallery()

	// drop expansion entries for ids that no longer exist
	kept := make(map[string]bool)
	query.Walk(data, func(p *model.Person, _ int) {
		if m.expanded[p.ID] {
			kept[p.ID] = true
		}
	})
	m.expanded = kept

	m.rebuildRows()
	m.refreshSelection()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture input first.
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.statsPanel.IsVisible() {
		switch msg.String() {
		case "s", "esc", "q":
			m.statsPanel.Hide()
		}
		return m, nil
	}
	if m.showJumper {
		return m.handleJumperKey(msg)
	}
	if m.showTagPicker {
		return m.handleTagPickerKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.help.Toggle()
		return m, nil

	case "s":
		m.statsPanel.Toggle()
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.filters.Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.filters.Search != "" {
			m.filters.Search = ""
			m.applyFilters()
		}
		return m, nil

	case "g":
		m.filters.Gender = nextGender(m.filters.Gender)
		m.applyFilters()
		return m, nil

	case "G":
		m.filters.Generation = m.nextGeneration(m.filters.Generation)
		m.applyFilters()
		return m, nil

	case "t":
		m.tagPicker = NewTagPickerModel(query.TagVocabulary(m.data), m.filters.Tags, m.theme)
		m.showTagPicker = true
		return m, nil

	case "f":
		m.jumper = NewJumperModel(m.data, m.theme)
		m.showJumper = true
		return m, textinput.Blink

	case "tab":
		if m.focus == focusTree {
			m.focus = focusGallery
		} else {
			m.focus = focusTree
		}
		return m, nil

	case "r":
		return m, m.reloadCmd()
	}

	if m.focus == focusGallery {
		if msg.String() == "p" {
			m.galleryPerson = !m.galleryPerson
			m.refreshGallery()
			return m, nil
		}
		var cmd tea.Cmd
		m.gallery, cmd = m.gallery.Update(msg)
		return m, cmd
	}
	return m.handleTreeKey(msg)
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.refreshSelection()
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.refreshSelection()
		}

	case "home":
		m.cursor = 0
		m.refreshSelection()

	case "end":
		m.cursor = len(m.rows) - 1
		m.refreshSelection()

	case "l", "enter", "right":
		if row := m.selectedRow(); row != nil && row.expandable && !row.expanded {
			m.expanded[row.person.ID] = true
			m.rebuildRows()
			m.refreshSelection()
		}

	case "h", "left":
		if row := m.selectedRow(); row != nil && row.expanded {
			m.expanded[row.person.ID] = false
			m.rebuildRows()
			m.refreshSelection()
		}

	case "E":
		m.expandAll()
		m.rebuildRows()
		m.refreshSelection()

	case "C":
		m.expanded = make(map[string]bool)
		m.rebuildRows()
		m.cursor = 0
		m.refreshSelection()

	case "d":
		m.detail.ScrollDown()

	case "u":
		m.detail.ScrollUp()

	case "y":
		m.copyLineage()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filters.Search = ""
		m.applyFilters()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := strings.TrimSpace(m.searchInput.Value()); v != m.filters.Search {
		m.filters.Search = v
		m.applyFilters()
	}
	return m, cmd
}

func (m Model) handleJumperKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.showJumper = false
		return m, nil
	}
	var cmd tea.Cmd
	m.jumper, cmd = m.jumper.Update(msg)
	if m.jumper.IsConfirmed() {
		m.showJumper = false
		if target := m.jumper.Selected(); target != nil {
			m.jumpTo(target.ID)
		}
	}
	return m, cmd
}

func (m Model) handleTagPickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tagPicker, cmd = m.tagPicker.Update(msg)
	if m.tagPicker.IsDone() {
		m.showTagPicker = false
		m.filters.Tags = m.tagPicker.Selection()
		m.applyFilters()
	}
	return m, cmd
}

// jumpTo expands every ancestor of the target so its row exists, then moves
// the cursor onto it.
func (m *Model) jumpTo(id string) {
	for _, ancestor := range query.ResolveLineage(m.data, id) {
		m.expanded[ancestor] = true
	}
	m.rebuildRows()
	for i, row := range m.rows {
		if row.person.ID == id {
			m.cursor = i
			break
		}
	}
	m.refreshSelection()
}

// copyLineage puts the selected person's descent path on the clipboard as
// display names.
func (m *Model) copyLineage() {
	if len(m.lineage) == 0 {
		return
	}
	text := lineageNames(m.data, m.lineage)
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = "lineage copied"
}

// nextGender cycles all → male → female → other → all.
func nextGender(g model.Gender) model.Gender {
	switch g {
	case "":
		return model.GenderMale
	case model.GenderMale:
		return model.GenderFemale
	case model.GenderFemale:
		return model.GenderOther
	default:
		return ""
	}
}

// nextGeneration cycles all → 0 → 1 → ... → max → all.
func (m *Model) nextGeneration(current int) int {
	max := query.MaxGeneration(m.data)
	if current == query.GenerationAll {
		return 0
	}
	if current >= max {
		return query.GenerationAll
	}
	return current + 1
}

// applyFilters re-derives the row list from the current filter state. The
// cursor stays on the same person when their row survives.
func (m *Model) applyFilters() {
	var keepID string
	if row := m.selectedRow(); row != nil {
		keepID = row.person.ID
	}
	m.rebuildRows()
	m.cursor = 0
	if keepID != "" {
		for i, row := range m.rows {
			if row.person.ID == keepID {
				m.cursor = i
				break
			}
		}
	}
	m.refreshSelection()
}

func (m *Model) rebuildRows() {
	m.rows = buildRows(m.data, m.filters, m.expanded)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) expandAll() {
	query.Walk(m.data, func(p *model.Person, _ int) {
		if len(p.Children) > 0 {
			m.expanded[p.ID] = true
		}
	})
}

func (m *Model) selectedRow() *treeRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// refreshGallery rebuilds the gallery items, narrowed to the selected
// person's events when the person filter is on.
func (m *Model) refreshGallery() {
	items := eventItems(m.data)
	if m.galleryPerson {
		if row := m.selectedRow(); row != nil {
			filtered := items[:0]
			for _, item := range items {
				if ev, ok := item.(EventItem); ok && ev.Event.Involves(row.person.ID) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
	}
	m.gallery.SetItems(items)
}

// refreshSelection recomputes the lineage and detail card for the cursor row.
func (m *Model) refreshSelection() {
	row := m.selectedRow()
	if row == nil {
		m.lineage = nil
		m.lineageSet = nil
		m.detail.Clear()
		return
	}
	m.lineage = query.ResolveLineage(m.data, row.person.ID)
	m.lineageSet = make(map[string]bool, len(m.lineage))
	for _, id := range m.lineage {
		m.lineageSet[id] = true
	}
	m.detail.SetPerson(m.data, row.person, row.generation, m.lineage)
}

// layout distributes the window between the panes.
func (m *Model) layout() {
	contentHeight := m.height - 6 // header, filter bar, divider, status bar, borders
	if contentHeight < 4 {
		contentHeight = 4
	}
	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth - 2*SpaceSM
	if rightWidth < 20 {
		rightWidth = 20
	}

	m.tree.SetSize(leftWidth-2, contentHeight)
	m.detail.SetSize(rightWidth, contentHeight)
	m.gallery.SetSize(leftWidth-2, contentHeight)
}

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	t := m.theme

	var left string
	if m.focus == focusGallery {
		left = m.gallery.View()
	} else {
		left = m.tree.View(m.rows, m.cursor, m.lineageSet)
	}

	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth - 2*SpaceSM

	leftPanel := PanelStyle(t)
	rightPanel := PanelStyle(t)
	if m.focus == focusTree {
		leftPanel = FocusedPanelStyle(t)
	} else {
		rightPanel = FocusedPanelStyle(t)
	}
	contentHeight := m.height - 6
	if contentHeight < 4 {
		contentHeight = 4
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		leftPanel.Width(leftWidth-2).Height(contentHeight).Render(left),
		rightPanel.Width(rightWidth).Height(contentHeight).Render(m.detail.View()),
	)

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.filterBarView(),
		RenderDivider(t, m.width),
		body,
		m.statusBarView(),
	)

	if overlay := m.overlayView(); overlay != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return screen
}

func (m Model) overlayView() string {
	switch {
	case m.help.IsVisible():
		return m.help.View()
	case m.statsPanel.IsVisible():
		return m.statsPanel.View()
	case m.showJumper:
		return m.jumper.View()
	case m.showTagPicker:
		return m.tagPicker.View()
	}
	return ""
}

func (m Model) headerView() string {
	t := m.theme
	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render(m.data.FamilyName)
	if m.data.Motto != "" {
		title += t.Renderer.NewStyle().Foreground(t.Muted).Italic(true).Render("  " + m.data.Motto)
	}
	return title
}

func (m Model) filterBarView() string {
	t := m.theme
	var parts []string

	if m.searching {
		parts = append(parts, m.searchInput.View())
	} else if m.filters.Search != "" {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Highlight).
			Render("search:"+m.filters.Search))
	}
	if m.filters.Gender != "" {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Highlight).
			Render("gender:"+string(m.filters.Gender)))
	}
	if m.filters.Generation != query.GenerationAll {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Highlight).
			Render(fmt.Sprintf("gen:%d", m.filters.Generation)))
	}
	if len(m.filters.Tags) > 0 {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Highlight).
			Render("tags:"+strings.Join(m.filters.Tags, ",")))
	}
	if len(parts) == 0 {
		return t.Renderer.NewStyle().Foreground(t.Muted).Render("no filters")
	}
	return strings.Join(parts, "  ")
}

func (m Model) statusBarView() string {
	t := m.theme
	hints := "j/k nav · / search · g gender · G gen · t tags · f jump · tab events · ? help · q quit"
	line := t.Renderer.NewStyle().Foreground(t.Muted).Render(hints)
	if m.status != "" {
		line = t.Renderer.NewStyle().Foreground(t.Secondary).Render(m.status) + "  " + line
	}
	return TruncateString(line, m.width)
}
