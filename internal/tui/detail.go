package tui

import (
	"fmt"

	"github.com/anaszait/tadabbur/models"
)

// detailModel shows one note in full, optionally with the looked-up ayah
// text above it.
type detailModel struct {
	note   models.Note
	verse  *models.Verse
	status string
}

func (m detailModel) View() string {
	out := titleStyle.Render("Qur'an "+m.note.Reference()) + "\n\n"

	if m.verse != nil {
		out += arabicStyle.Render(m.verse.Arabic) + "\n"
		if m.verse.Translation != "" {
			out += m.verse.Translation + "\n"
		}
		if m.verse.SurahName != "" {
			out += helpStyle.Render(fmt.Sprintf("%s %d:%d", m.verse.SurahName, m.verse.Surah, m.verse.Verse)) + "\n"
		}
		out += "\n"
	}

	out += m.note.Text + "\n"
	if m.note.AudioURL != "" {
		out += "\n" + helpStyle.Render("♪ voice note attached") + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("v verse  e edit  m move  c copy share link  d delete  esc back")
	return out
}
