package tui

import (
	"fmt"

	"github.com/anaszait/tadabbur/models"
)

// notesModel lists the notes of one reading pass.
type notesModel struct {
	project models.Project
	items   []models.Note
	idx     int
	loading bool
	status  string
}

func (m notesModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m notesModel) View() string {
	out := titleStyle.Render(m.project.Name) + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No notes in this pass yet. Press n to write one.\n"
	} else {
		for i, n := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := ""
			if n.AudioURL != "" {
				marker = " ♪"
			}
			out += fmt.Sprintf("%s%-7s %s%s\n", cursor, n.Reference(), fitText(firstLine(n.Text), 50), marker)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  n new  d delete  s sync  esc back  q quit")
	return out
}
