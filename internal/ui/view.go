package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize/english"
)

func (m Model) View() string {
	if m.dialog != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderDialog())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.keys.Add.Help().Key)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	if m.mode == modeList {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.help.View(inputKeys(m.keys)))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	count := countStyle.Render("You have " + english.Plural(len(m.tasks), "task", ""))
	return titleStyle.Render("tasklist") + "  " + count
}

func (m Model) renderRows() string {
	rowWidth := max(m.width-2, 1)
	lines := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor && m.mode != modeAdd {
			cursor = selectedStyle.Render("> ")
		}

		box := mutedStyle.Render(boxUnchecked)
		title := t.Title
		if t.Done {
			box = successStyle.Render(boxChecked)
			title = doneStyle.Render(t.Title)
		}

		var line string
		if m.mode == modeEdit && t.ID == m.editingID {
			line = fmt.Sprintf("%s%s %s %s", cursor, box, m.editInput.View(),
				mutedStyle.Render("(editing)"))
		} else {
			line = fmt.Sprintf("%s%s %s", cursor, box, title)
		}
		// one line per task; syncList scrolls by task index
		line = ansi.Truncate(line, rowWidth, "…")
		if i%2 == 1 {
			line = stripeStyle.Width(rowWidth).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDialog() string {
	var hint string
	switch m.dialog.kind {
	case dialogConfirmDelete:
		hint = fmt.Sprintf("%s delete • %s keep", m.keys.Yes.Help().Key, m.keys.No.Help().Key)
	default:
		hint = fmt.Sprintf("%s ok", m.keys.Confirm.Help().Key)
	}
	title := errorStyle.Render(m.dialog.title)
	return dialogStyle.Render(title + "\n\n" + m.dialog.body + "\n\n" + mutedStyle.Render(hint))
}

// syncList refreshes the list viewport and keeps the cursor row visible.
func (m *Model) syncList() {
	m.list.Width = m.width
	m.list.Height = max(m.height-chromeHeight, 3)
	m.list.SetContent(m.renderRows())

	switch {
	case m.cursor < m.list.YOffset:
		m.list.SetYOffset(m.cursor)
	case m.cursor >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}
