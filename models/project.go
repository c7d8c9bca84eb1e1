package models

import "time"

// Project is a "reading pass": a user-defined named collection of notes.
// A project is owned by exactly one user; deleting it removes all notes
// that reference it in the same database transaction.
type Project struct {
	// ProjectID is the globally unique identifier of the pass (UUID v4).
	ProjectID string `json:"project_id"`

	// UserID is the owner of the pass. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Name is the user-chosen title of the pass (e.g. "Ramadan 1447").
	Name string `json:"name"`

	// Description is optional free text describing the pass.
	Description string `json:"description,omitempty"`

	// Color is the display color of the pass in "#rrggbb" form. It is
	// also used as the background of rendered share cards.
	Color string `json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
