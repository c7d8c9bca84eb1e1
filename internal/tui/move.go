package tui

import (
	"github.com/anaszait/tadabbur/models"
)

// moveModel picks the target pass a note should move into.
type moveModel struct {
	noteID  string
	targets []models.Project
	idx     int
}

func (m moveModel) current() (models.Project, bool) {
	if len(m.targets) == 0 || m.idx < 0 || m.idx >= len(m.targets) {
		return models.Project{}, false
	}
	return m.targets[m.idx], true
}

func (m moveModel) View() string {
	out := titleStyle.Render("Move note to...") + "\n\n"

	if len(m.targets) == 0 {
		out += "No other reading pass to move into.\n"
	} else {
		for i, p := range m.targets {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + p.Name + "\n"
		}
	}

	out += "\n" + helpStyle.Render("enter move  esc cancel")
	return out
}
