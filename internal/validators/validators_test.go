package validators

import (
	"testing"

	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
)

func validNote() models.Note {
	return models.Note{ProjectID: "p1", Surah: 2, Verse: 255, Text: "reflection"}
}

func TestValidateNote(t *testing.T) {
	assert.NoError(t, ValidateNote(validNote()))

	tests := []struct {
		name   string
		mutate func(*models.Note)
		want   error
	}{
		{"surah too low", func(n *models.Note) { n.Surah = 0 }, ErrInvalidSurah},
		{"surah too high", func(n *models.Note) { n.Surah = 115 }, ErrInvalidSurah},
		{"verse zero", func(n *models.Note) { n.Verse = 0 }, ErrInvalidVerse},
		{"no project", func(n *models.Note) { n.ProjectID = "" }, ErrMissingProject},
		{"blank text no audio", func(n *models.Note) { n.Text = "   " }, ErrEmptyNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNote()
			tt.mutate(&n)
			assert.ErrorIs(t, ValidateNote(n), tt.want)
		})
	}
}

func TestValidateNote_AudioOnlyIsFine(t *testing.T) {
	n := validNote()
	n.Text = ""
	n.AudioURL = "/api/notes/n1/audio"
	assert.NoError(t, ValidateNote(n))
}

func TestValidateProject(t *testing.T) {
	assert.NoError(t, ValidateProject(models.Project{Name: "Pass", Color: "#A1b2C3"}))
	assert.NoError(t, ValidateProject(models.Project{Name: "Pass"}))

	assert.ErrorIs(t, ValidateProject(models.Project{Name: "  "}), ErrEmptyProjectName)
	assert.ErrorIs(t, ValidateProject(models.Project{Name: "Pass", Color: "green"}), ErrInvalidColor)
	assert.ErrorIs(t, ValidateProject(models.Project{Name: "Pass", Color: "#12345"}), ErrInvalidColor)
}

func TestValidateNoteListQuery(t *testing.T) {
	assert.NoError(t, ValidateNoteListQuery(models.NoteListQuery{}))
	assert.NoError(t, ValidateNoteListQuery(models.NoteListQuery{Sort: models.SortByReference, Surah: 114}))

	assert.ErrorIs(t, ValidateNoteListQuery(models.NoteListQuery{Sort: "alphabetical"}), ErrInvalidSortOrder)
	assert.ErrorIs(t, ValidateNoteListQuery(models.NoteListQuery{Surah: 200}), ErrInvalidSurah)
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials("reader@example.org", "long enough"))

	assert.ErrorIs(t, ValidateCredentials("not-an-email", "long enough"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateCredentials("reader@example.org", "short"), ErrWeakPassword)
}
