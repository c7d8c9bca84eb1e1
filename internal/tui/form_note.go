package tui

import (
	"strconv"
	"strings"

	"github.com/anaszait/tadabbur/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// formNoteModel is the create/edit form of a note. The reference field is
// optional: when left blank, the surah:verse anchor is recovered from the
// note text, which is how dictated notes arrive.
type formNoteModel struct {
	reference  textinput.Model
	text       textarea.Model
	focus      int // 0 reference, 1 text
	editing    bool
	noteID     string
	projectID  string
	submitting bool
}

func newFormNoteModel(projectID string, note *models.Note) formNoteModel {
	ref := textinput.New()
	ref.Placeholder = "2:255 (blank to detect from text)"
	ref.CharLimit = 9
	ref.Width = 40
	ref.Focus()

	body := textarea.New()
	body.Placeholder = "your reflection..."
	body.SetWidth(60)
	body.SetHeight(6)
	body.CharLimit = 0

	m := formNoteModel{reference: ref, text: body, projectID: projectID}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.NoteID
	m.reference.SetValue(note.Reference())
	m.text.SetValue(note.Text)
	return m
}

// toNote assembles the note for saving. An unparseable reference is left
// at 0:0 so the service either recovers it from the text or rejects the
// note.
func (m formNoteModel) toNote() models.Note {
	note := models.Note{
		NoteID:    m.noteID,
		ProjectID: m.projectID,
		Text:      m.text.Value(),
	}
	if surah, verse, ok := parseReference(m.reference.Value()); ok {
		note.Surah = surah
		note.Verse = verse
	}
	return note
}

func parseReference(raw string) (int, int, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	surah, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	verse, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return surah, verse, true
}

func (m formNoteModel) View() string {
	title := "New note"
	if m.editing {
		title = "Edit note " + m.reference.Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Verse: [" + m.reference.View() + "]\n\n"
	out += m.text.View() + "\n\n"
	if m.submitting {
		out += "[Saving...]\n"
	}
	out += helpStyle.Render("esc cancel  tab switch field  ctrl+s save")
	return out
}
