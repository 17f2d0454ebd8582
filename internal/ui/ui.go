// Package ui is the bubbletea front end. It renders the derived view and
// the dashboard counters and drives every task mutation through the store.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/config"
	"taskdeck/internal/query"
	"taskdeck/internal/store"
	"taskdeck/internal/task"
	"taskdeck/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
)

type editState struct {
	taskID      string
	title       string
	description string
	status      string
	priority    string
	due         string
	tags        string
	index       int
}

type Deps struct {
	Tasks    *store.TaskStore
	Criteria *store.CriteriaStore
	Settings *store.SettingsStore
	Queries  *query.Queries
	Derived  *view.Derived
	Cfg      config.Config
}

type Model struct {
	deps       Deps
	visible    []task.Task
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	confirmDel bool
	pendingDel *task.Task
	edit       *editState
	styles     styles
	width      int
}

func Run(deps Deps) error {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		deps:    deps,
		visible: deps.Derived.Tasks(),
		cursor:  0,
		mode:    modeList,
		input:   ti,
		status:  "Press 'a' to add, space to cycle status, 'd' to delete.",
		styles:  newStyles(deps.Settings.Settings().Theme),
	}

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.edit != nil {
			return m.updateEditMode(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeSearch:
		return m.updateSearchMode(key, msg)
	}
	return m.updateListMode(key)
}

// refresh re-reads the derived view and clamps the cursor.
func (m *Model) refresh() {
	m.visible = m.deps.Derived.Tasks()
	m.cursor = clampCursor(m.cursor, len(m.visible))
}

func (m Model) selected() (task.Task, bool) {
	if len(m.visible) == 0 {
		return task.Task{}, false
	}
	return m.visible[clampCursor(m.cursor, len(m.visible))], true
}

func (m Model) lang() string {
	return m.deps.Settings.Settings().Language
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.deps.Cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = tr(m.lang(), "cancelled")
		return m, nil
	case m.deps.Cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		created, err := m.deps.Tasks.Create(task.CreateInput{
			Title:    title,
			Status:   task.StatusPending,
			Priority: task.PriorityMedium,
		})
		if err != nil {
			m.status = fmt.Sprintf("add failed: %v", err)
			return m, nil
		}
		m.refresh()
		for i, t := range m.visible {
			if t.ID == created.ID {
				m.cursor = i
				break
			}
		}
		m.status = tr(m.lang(), "added")
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.deps.Cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		f := m.deps.Criteria.Filters()
		f.Search = ""
		m.deps.Criteria.SetFilters(f)
		m.refresh()
		m.status = tr(m.lang(), "cancelled")
		return m, nil
	case m.deps.Cfg.Keys.Confirm:
		m.mode = modeList
		m.input.Blur()
		m.status = fmt.Sprintf("%s: %q", tr(m.lang(), "search"), m.deps.Criteria.Filters().Search)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		f := m.deps.Criteria.Filters()
		f.Search = strings.TrimSpace(m.input.Value())
		m.deps.Criteria.SetFilters(f)
		m.refresh()
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	k := m.deps.Cfg.Keys
	switch key {
	case "ctrl+c", k.Quit:
		return m, tea.Quit
	case k.Down, "down":
		if len(m.visible) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.visible))
		}
	case k.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.visible))
		}
	case k.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case k.Search:
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		m.input.SetValue(m.deps.Criteria.Filters().Search)
		m.input.Focus()
		m.status = "Search: type to filter, Enter to keep, Esc to clear"
	case k.Toggle:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		next := nextStatus(t.Status)
		if _, _, err := m.deps.Tasks.Update(t.ID, task.UpdateInput{Status: &next}); err != nil {
			m.status = fmt.Sprintf("update failed: %v", err)
			return m, nil
		}
		m.refresh()
		m.status = fmt.Sprintf("%s → %s", t.Title, next)
	case k.Delete:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	case k.Duplicate:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		dup, err := m.deps.Tasks.Duplicate(t.ID)
		if err != nil {
			m.status = fmt.Sprintf("duplicate failed: %v", err)
			return m, nil
		}
		m.refresh()
		m.status = fmt.Sprintf("%s: %s", tr(m.lang(), "duplicated"), dup.Title)
	case k.Edit:
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(t)
	case k.MoveUp:
		m = m.moveSelected(-1)
	case k.MoveDown:
		m = m.moveSelected(1)
	case k.Filter:
		m = m.cycleStatusFilter()
	case k.Sort:
		m = m.cycleSortField()
	case k.Order:
		m = m.toggleSortOrder()
	case k.Theme:
		next := store.ThemeDark
		if m.deps.Settings.Settings().Theme == store.ThemeDark {
			next = store.ThemeLight
		}
		m.deps.Settings.SetTheme(next)
		m.styles = newStyles(next)
		m.status = "Theme: " + next
	case k.Language:
		next := store.LangEnglish
		if m.lang() == store.LangEnglish {
			next = store.LangJapanese
		}
		m.deps.Settings.SetLanguage(next)
		m.status = "Language: " + next
	}
	return m, nil
}

// moveSelected swaps the selected task with its neighbor in the canonical
// collection order and submits the result as a reorder.
func (m Model) moveSelected(delta int) Model {
	t, ok := m.selected()
	if !ok {
		return m
	}
	all := m.deps.Tasks.Tasks()
	idx := -1
	for i, c := range all {
		if c.ID == t.ID {
			idx = i
			break
		}
	}
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(all) {
		return m
	}
	all[idx], all[target] = all[target], all[idx]
	m.deps.Tasks.Reorder(all)
	m.refresh()
	for i, v := range m.visible {
		if v.ID == t.ID {
			m.cursor = i
			break
		}
	}
	m.status = tr(m.lang(), "reordered")
	return m
}

func (m Model) cycleStatusFilter() Model {
	f := m.deps.Criteria.Filters()
	switch {
	case f.Status == nil:
		st := task.StatusPending
		f.Status = &st
	case *f.Status == task.StatusPending:
		st := task.StatusInProgress
		f.Status = &st
	case *f.Status == task.StatusInProgress:
		st := task.StatusCompleted
		f.Status = &st
	default:
		f.Status = nil
	}
	m.deps.Criteria.SetFilters(f)
	m.refresh()
	if f.Status == nil {
		m.status = "Filter: all"
	} else {
		m.status = "Filter: " + string(*f.Status)
	}
	return m
}

func (m Model) cycleSortField() Model {
	s := m.deps.Criteria.Sort()
	switch s.Field {
	case task.SortByCreatedAt:
		s.Field = task.SortByDueDate
	case task.SortByDueDate:
		s.Field = task.SortByPriority
	case task.SortByPriority:
		s.Field = task.SortByTitle
	default:
		s.Field = task.SortByCreatedAt
	}
	m.deps.Criteria.SetSort(s)
	m.refresh()
	m.status = fmt.Sprintf("Sort: %s %s", s.Field, s.Order)
	return m
}

func (m Model) toggleSortOrder() Model {
	s := m.deps.Criteria.Sort()
	if s.Order == task.Asc {
		s.Order = task.Desc
	} else {
		s.Order = task.Asc
	}
	m.deps.Criteria.SetSort(s)
	m.refresh()
	m.status = fmt.Sprintf("Sort: %s %s", s.Field, s.Order)
	return m
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		m.deps.Tasks.Delete(m.pendingDel.ID)
		m.refresh()
		m.status = tr(m.lang(), "deleted")
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) startEdit(t task.Task) (tea.Model, tea.Cmd) {
	m.edit = &editState{
		taskID:      t.ID,
		title:       t.Title,
		description: t.Description,
		status:      string(t.Status),
		priority:    string(t.Priority),
		due:         formatDue(t.DueDate),
		tags:        strings.Join(t.Tags, ","),
		index:       0,
	}
	m.input.SetValue(m.edit.currentValue())
	m.input.Placeholder = m.edit.currentLabel()
	m.input.Focus()
	m.mode = modeEdit
	m.status = "Edit: tab/shift+tab to move, enter to save/next, esc to cancel"
	return m, nil
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.deps.Cfg.Keys.Cancel, "esc":
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "shift+tab":
		if m.edit == nil {
			return m, nil
		}
		m.edit.setCurrentValue(m.input.Value())
		delta := 1
		if key == "shift+tab" {
			delta = -1
		}
		m.edit.index = wrapIndex(m.edit.index+delta, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		m.status = m.editPrompt()
		return m, nil
	case m.deps.Cfg.Keys.Confirm, "enter":
		if m.edit == nil {
			return m, nil
		}
		m.edit.setCurrentValue(m.input.Value())
		if m.edit.index >= len(editFields())-1 {
			return m.saveEdit()
		}
		m.edit.index++
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		m.status = m.editPrompt()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	if m.edit == nil {
		return m, nil
	}
	in, err := m.edit.toInput()
	if err != nil {
		m.status = fmt.Sprintf("invalid: %v", err)
		return m, nil
	}
	taskID := m.edit.taskID
	if _, _, err := m.deps.Tasks.Update(taskID, in); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.edit = nil
	m.mode = modeList
	m.input.Blur()
	m.refresh()
	for i, t := range m.visible {
		if t.ID == taskID {
			m.cursor = i
			break
		}
	}
	m.status = tr(m.lang(), "saved")
	return m, nil
}

func editFields() []string {
	return []string{"title", "description", "status (pending/in_progress/completed)", "priority (low/medium/high)", "due date (YYYY-MM-DD)", "tags (comma separated)"}
}

func (es editState) currentLabel() string {
	return editFields()[es.index]
}

func (es editState) currentValue() string {
	switch es.index {
	case 0:
		return es.title
	case 1:
		return es.description
	case 2:
		return es.status
	case 3:
		return es.priority
	case 4:
		return es.due
	case 5:
		return es.tags
	default:
		return ""
	}
}

func (es *editState) setCurrentValue(v string) {
	switch es.index {
	case 0:
		es.title = v
	case 1:
		es.description = v
	case 2:
		es.status = v
	case 3:
		es.priority = v
	case 4:
		es.due = v
	case 5:
		es.tags = v
	}
}

// toInput converts the edit buffer into a partial update. An empty due
// field clears the due date; empty tags clear the tag list.
func (es editState) toInput() (task.UpdateInput, error) {
	var in task.UpdateInput
	title := strings.TrimSpace(es.title)
	in.Title = &title
	desc := strings.TrimSpace(es.description)
	in.Description = &desc

	st := task.Status(strings.TrimSpace(es.status))
	in.Status = &st
	p := task.Priority(strings.TrimSpace(es.priority))
	in.Priority = &p

	due := strings.TrimSpace(es.due)
	if due == "" {
		in.ClearDueDate = true
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", due, time.Local)
		if err != nil {
			return in, err
		}
		in.DueDate = &parsed
	}

	in.Tags = []string{}
	for _, tag := range strings.Split(es.tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			in.Tags = append(in.Tags, tag)
		}
	}
	return in, nil
}

func (m Model) editPrompt() string {
	if m.edit == nil {
		return ""
	}
	return fmt.Sprintf("Editing %s (field %d of %d). Enter to advance, Esc to cancel.",
		m.edit.currentLabel(), m.edit.index+1, len(editFields()))
}

func nextStatus(s task.Status) task.Status {
	switch s {
	case task.StatusPending:
		return task.StatusInProgress
	case task.StatusInProgress:
		return task.StatusCompleted
	default:
		return task.StatusPending
	}
}

func formatDue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
