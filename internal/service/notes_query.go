package service

import (
	"sort"
	"strings"

	"github.com/anaszait/tadabbur/models"
)

// FilterNotes returns the notes matching every constraint set in query.
// Zero-valued query fields do not constrain; the text search is a
// case-insensitive substring match.
func FilterNotes(notes []models.Note, query models.NoteListQuery) []models.Note {
	search := strings.ToLower(strings.TrimSpace(query.Search))

	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if query.ProjectID != "" && n.ProjectID != query.ProjectID {
			continue
		}
		if query.Surah != 0 && n.Surah != query.Surah {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(n.Text), search) {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered
}

// SortNotes orders notes in place. The empty order falls back to
// newest-first, matching NoteSortOrder.Valid.
func SortNotes(notes []models.Note, order models.NoteSortOrder) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		switch order {
		case models.SortByReference:
			return lessByReference(a, b)
		case models.SortByReferenceDesc:
			return lessByReference(b, a)
		case models.SortByCreated:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return b.CreatedAt.Before(a.CreatedAt)
		}
	})
}

// lessByReference orders by surah, then verse, with creation time breaking
// ties between notes on the same ayah.
func lessByReference(a, b models.Note) bool {
	if a.Surah != b.Surah {
		return a.Surah < b.Surah
	}
	if a.Verse != b.Verse {
		return a.Verse < b.Verse
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
