package tui

import (
	"github.com/anaszait/tadabbur/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formProjectModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	projectID  string
	submitting bool
}

func newFormProjectModel(project *models.Project) formProjectModel {
	inputs := make([]textinput.Model, 3)
	placeholders := []string{"name (e.g. Ramadan 1447)", "description (optional)", "#2e7d32 (optional)"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 128
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	m := formProjectModel{inputs: inputs}
	if project == nil {
		return m
	}

	m.editing = true
	m.projectID = project.ProjectID
	m.inputs[0].SetValue(project.Name)
	m.inputs[1].SetValue(project.Description)
	m.inputs[2].SetValue(project.Color)
	return m
}

func (m formProjectModel) toProject() models.Project {
	return models.Project{
		ProjectID:   m.projectID,
		Name:        m.inputs[0].Value(),
		Description: m.inputs[1].Value(),
		Color:       m.inputs[2].Value(),
	}
}

func (m formProjectModel) View() string {
	title := "New reading pass"
	if m.editing {
		title = "Edit: " + m.inputs[0].Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Name:        [" + m.inputs[0].View() + "]\n"
	out += "Description: [" + m.inputs[1].View() + "]\n"
	out += "Color:       [" + m.inputs[2].View() + "]\n\n"
	if m.submitting {
		out += "[Saving...]\n"
	} else {
		out += "[Save]\n"
	}
	out += "\n" + helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}
