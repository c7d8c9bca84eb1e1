package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNotFound is returned when a reading pass does not exist or
	// is not owned by the requesting user.
	ErrProjectNotFound = errors.New("project not found")

	// ErrNoteNotFound is returned when a note does not exist, is not owned
	// by the requesting user, or has been soft-deleted.
	ErrNoteNotFound = errors.New("note not found")

	// ErrForeignProject is returned when a note write references a project
	// that does not belong to the same user (composite FK violation).
	ErrForeignProject = errors.New("note references a project of another user")

	// ErrAudioNotFound is returned when a note has no stored recording.
	ErrAudioNotFound = errors.New("audio attachment not found")
)
