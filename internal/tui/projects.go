package tui

import (
	"fmt"

	"github.com/anaszait/tadabbur/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// projectsModel lists the user's reading passes.
type projectsModel struct {
	items   []models.Project
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
}

func newProjectsModel() projectsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return projectsModel{spinner: s, loading: true}
}

func (m projectsModel) current() (models.Project, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Project{}, false
	}
	return m.items[m.idx], true
}

func (m projectsModel) View() string {
	header := titleStyle.Render("tadabbur - reading passes")
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No reading passes yet. Press n to start one.\n"
	} else {
		for i, p := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			label := p.Name
			if p.Description != "" {
				label += "  " + helpStyle.Render(fitText(p.Description, 40))
			}
			out += fmt.Sprintf("%s%s\n", cursor, label)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  n new  e edit  d delete  s sync  l sign out  q quit")
	return out
}
