package models

import "time"

// NoteState is the compact per-note descriptor exchanged during sync.
// It is enough to classify a note as in-sync, stale, or deleted on either
// side without shipping the full note body.
type NoteState struct {
	NoteID    string     `json:"note_id"`
	Hash      string     `json:"hash"`
	Version   int64      `json:"version"`
	Deleted   bool       `json:"deleted"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Dirty marks a note changed locally since the last push. Only the
	// client cache sets it; it never travels over the wire.
	Dirty bool `json:"-"`
}

// SyncPlan is the outcome of comparing server-side note states against a
// client's local cache. Every note ends up in exactly one bucket.
type SyncPlan struct {
	// Download lists notes the client must fetch from the server
	// (missing locally, or the server copy is newer).
	Download []NoteState

	// Upload lists notes the client must push to the server
	// (missing on the server, or the local copy is newer).
	Upload []NoteState

	// DeleteClient lists notes the client must remove locally because
	// the server has them soft-deleted.
	DeleteClient []NoteState

	// DeleteServer lists notes the client has soft-deleted locally and
	// must propagate to the server.
	DeleteServer []NoteState

	// Conflict lists notes edited locally whose server copy also moved
	// since the last sync; resolution is deferred to the caller (server
	// copy wins by default).
	Conflict []NoteState
}

// IsEmpty reports whether the plan requires no action at all.
func (p SyncPlan) IsEmpty() bool {
	return len(p.Download) == 0 &&
		len(p.Upload) == 0 &&
		len(p.DeleteClient) == 0 &&
		len(p.DeleteServer) == 0 &&
		len(p.Conflict) == 0
}
