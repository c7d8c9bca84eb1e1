package models

// MoveNoteRequest re-parents a note into another reading pass owned by
// the same user.
type MoveNoteRequest struct {
	ProjectID string `json:"project_id"`
}

// SyncRequest asks the server for the full bodies of specific notes,
// typically the Download bucket of a previously computed sync plan.
type SyncRequest struct {
	NoteIDs []string `json:"note_ids"`
}

// NoteListQuery carries the filter and ordering of a note listing.
// Zero values mean "no constraint".
type NoteListQuery struct {
	// ProjectID restricts the listing to one reading pass.
	ProjectID string `json:"project_id,omitempty"`

	// Surah restricts the listing to one chapter (1–114).
	Surah int `json:"surah,omitempty"`

	// Search keeps only notes whose text contains the substring
	// (case-insensitive).
	Search string `json:"search,omitempty"`

	// Sort selects one of the four supported orderings.
	Sort NoteSortOrder `json:"sort,omitempty"`
}

// NoteSortOrder enumerates the four supported note orderings.
type NoteSortOrder string

const (
	// SortByReference orders by surah, then verse, ascending.
	SortByReference NoteSortOrder = "reference"

	// SortByReferenceDesc orders by surah, then verse, descending.
	SortByReferenceDesc NoteSortOrder = "reference_desc"

	// SortByCreated orders by creation time, oldest first.
	SortByCreated NoteSortOrder = "created"

	// SortByCreatedDesc orders by creation time, newest first.
	SortByCreatedDesc NoteSortOrder = "created_desc"
)

// Valid reports whether s is one of the supported orderings. The empty
// value is valid and means SortByCreatedDesc.
func (s NoteSortOrder) Valid() bool {
	switch s {
	case "", SortByReference, SortByReferenceDesc, SortByCreated, SortByCreatedDesc:
		return true
	}
	return false
}
