package models

// SyncResponse returns the per-note states of everything the user owns,
// soft-deleted notes included.
type SyncResponse struct {
	NoteStates []NoteState `json:"note_states"`
	Length     int         `json:"length"`
}

// NotesResponse is the body of a note listing or a bulk note fetch.
type NotesResponse struct {
	Notes  []Note `json:"notes"`
	Length int    `json:"length"`
}

// ShareLinks carries everything a client needs to share a note: the
// pre-rendered card endpoint plus social deep links wrapping the note
// text.
type ShareLinks struct {
	// CardURL is the server path of the rendered PNG share card.
	CardURL string `json:"card_url"`

	// Text is the share caption (reference + note excerpt).
	Text string `json:"text"`

	Twitter  string `json:"twitter"`
	WhatsApp string `json:"whatsapp"`
	Telegram string `json:"telegram"`
}

// VersionResponse reports the running application version.
type VersionResponse struct {
	Version string `json:"version"`
}
