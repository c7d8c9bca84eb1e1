package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create an account"}}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("tadabbur") + "\n\nnotes along your reading of the Qur'an\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("q quit")
	return out
}
