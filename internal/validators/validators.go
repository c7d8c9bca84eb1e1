// Package validators holds the request-level validation rules of the API.
// The database enforces the same invariants with constraints; validating
// here first turns driver errors into friendly 400s.
package validators

import (
	"regexp"
	"strings"

	"github.com/anaszait/tadabbur/models"
)

const minPasswordLength = 8

var (
	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateNote checks the invariants of a note write: reference bounds,
// project membership, and non-emptiness.
func ValidateNote(note models.Note) error {
	if note.Surah < models.MinSurah || note.Surah > models.MaxSurah {
		return ErrInvalidSurah
	}
	if note.Verse < models.MinVerse {
		return ErrInvalidVerse
	}
	if note.ProjectID == "" {
		return ErrMissingProject
	}
	if strings.TrimSpace(note.Text) == "" && note.AudioURL == "" {
		return ErrEmptyNote
	}
	return nil
}

// ValidateProject checks the invariants of a pass write. The empty color
// is allowed; the store falls back to its column default.
func ValidateProject(project models.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return ErrEmptyProjectName
	}
	if project.Color != "" && !colorPattern.MatchString(project.Color) {
		return ErrInvalidColor
	}
	return nil
}

// ValidateNoteListQuery checks listing parameters.
func ValidateNoteListQuery(query models.NoteListQuery) error {
	if !query.Sort.Valid() {
		return ErrInvalidSortOrder
	}
	if query.Surah != 0 && (query.Surah < models.MinSurah || query.Surah > models.MaxSurah) {
		return ErrInvalidSurah
	}
	return nil
}

// ValidateCredentials checks registration input.
func ValidateCredentials(email, password string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
