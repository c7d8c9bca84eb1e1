package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Sign in") + "\n\n"
	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n\n"
	if m.submitting {
		out += "[Signing in...]\n"
	} else {
		out += "[Sign in]\n"
	}
	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	inputs := make([]textinput.Model, 4)
	placeholders := []string{"name", "email", "password (8+ characters)", "repeat password"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
	}
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].EchoCharacter = '*'
	inputs[0].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) View() string {
	out := titleStyle.Render("Create an account") + "\n\n"
	out += "Name:     [" + m.inputs[0].View() + "]\n"
	out += "Email:    [" + m.inputs[1].View() + "]\n"
	out += "Password: [" + m.inputs[2].View() + "]\n"
	out += "Repeat:   [" + m.inputs[3].View() + "]\n\n"
	if m.submitting {
		out += "[Creating...]\n"
	} else {
		out += "[Create]\n"
	}
	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}
