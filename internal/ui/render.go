package ui

import (
	"fmt"
	"strings"

	"taskdeck/internal/task"
)

const maxDescription = 60

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("taskdeck"))
	b.WriteString("\n")
	b.WriteString(m.renderDashboard())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.styles.dim.Render(tr(m.lang(), "no_tasks")))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString("Add task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeSearch:
		b.WriteString("Search: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeEdit:
		b.WriteString(m.renderEditBox())
		b.WriteString("\n")
		b.WriteString("Field: " + m.edit.currentLabel())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(m.renderHelp()))

	return b.String()
}

func (m Model) renderDashboard() string {
	st := m.deps.Queries.Stats()
	lang := m.lang()
	parts := []string{
		fmt.Sprintf("%s:%d", tr(lang, "total"), st.Total),
		fmt.Sprintf("%s:%d", tr(lang, "pending"), st.Pending),
		fmt.Sprintf("%s:%d", tr(lang, "in_progress"), st.InProgress),
		fmt.Sprintf("%s:%d", tr(lang, "completed"), st.Completed),
	}
	line := strings.Join(parts, "  ")
	if st.Overdue > 0 {
		line += "  " + m.styles.overdue.Render(fmt.Sprintf("%s:%d", tr(lang, "overdue"), st.Overdue))
	}
	if st.DueToday > 0 {
		line += "  " + m.styles.dueToday.Render(fmt.Sprintf("%s:%d", tr(lang, "due_today"), st.DueToday))
	}
	line += fmt.Sprintf("  %.0f%%", st.CompletionRate)
	return line
}

func (m Model) renderTaskList() string {
	overdue := map[string]bool{}
	for _, t := range m.deps.Queries.Overdue() {
		overdue[t.ID] = true
	}

	var b strings.Builder
	for i, t := range m.visible {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		marker := statusMarker(t.Status)
		line := fmt.Sprintf("%s %s %s", cursor, marker, t.Title)
		line += " " + m.styles.priority(t.Priority).Render("["+string(t.Priority)+"]")
		if t.DueDate != nil {
			due := t.DueDate.Format("2006-01-02")
			if overdue[t.ID] {
				line += " " + m.styles.overdue.Render("!"+due)
			} else {
				line += " " + m.styles.dim.Render(due)
			}
		}
		if len(t.Tags) > 0 {
			line += " " + m.styles.dim.Render("#"+strings.Join(t.Tags, " #"))
		}
		if t.Description != "" {
			line += " " + m.styles.dim.Render("– "+truncate(t.Description, maxDescription))
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEditBox() string {
	if m.edit == nil {
		return ""
	}
	fields := editFields()
	values := []string{
		m.edit.title,
		m.edit.description,
		m.edit.status,
		m.edit.priority,
		m.edit.due,
		m.edit.tags,
	}
	var b strings.Builder
	for i, name := range fields {
		prefix := " "
		if i == m.edit.index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-40s : %s\n", prefix, name, val))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	k := m.deps.Cfg.Keys
	return fmt.Sprintf("%s/%s move • %s add • %s edit • %s dup • %s cycle status • %s delete • %s search • %s filter • %s/%s sort • %s/%s move task • %s theme • %s quit",
		k.Up, k.Down, k.Add, k.Edit, k.Duplicate, keyName(k.Toggle), k.Delete, k.Search, k.Filter, k.Sort, k.Order, k.MoveUp, k.MoveDown, k.Theme, k.Quit)
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func statusMarker(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return "[x]"
	case task.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
