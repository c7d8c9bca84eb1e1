package models

import (
	"strconv"
	"time"
)

// Surah numbering bounds of the mushaf. A note's reference must satisfy
// MinSurah <= Surah <= MaxSurah and Verse >= MinVerse.
const (
	MinSurah = 1
	MaxSurah = 114
	MinVerse = 1
)

// Note is a free-text annotation anchored to a single chapter:verse
// reference. A note belongs to exactly one project at a time and may be
// re-parented via a "move" operation.
type Note struct {
	// NoteID is the globally unique identifier of the note (UUID v4).
	NoteID string `json:"note_id"`

	// UserID is the owner of the note. Not exposed via JSON.
	UserID int64 `json:"-"`

	// ProjectID references the reading pass the note belongs to. Must
	// point to a project owned by the same user.
	ProjectID string `json:"project_id"`

	// Surah is the chapter number, 1–114.
	Surah int `json:"surah"`

	// Verse is the ayah number within the surah, >= 1.
	Verse int `json:"verse"`

	// Text is the note body. May have been dictated on the client; in
	// that case AudioURL points at the original recording.
	Text string `json:"text"`

	// AudioURL is the server path of the attached recording, empty when
	// the note has no audio.
	AudioURL string `json:"audio_url,omitempty"`

	// Version increases on every write and drives client sync.
	Version int64 `json:"version"`

	// Deleted marks the note as soft-deleted so offline clients can
	// learn about removals during sync. Deleted notes are excluded from
	// all listings.
	Deleted bool `json:"deleted,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// Reference returns the note's anchor in canonical "surah:verse" form.
func (n Note) Reference() string {
	return strconv.Itoa(n.Surah) + ":" + strconv.Itoa(n.Verse)
}
