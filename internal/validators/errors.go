package validators

import "errors"

// Validation sentinels. Handlers map all of them onto HTTP 400.
var (
	// ErrInvalidSurah is returned when the chapter number is outside 1–114.
	ErrInvalidSurah = errors.New("surah must be between 1 and 114")

	// ErrInvalidVerse is returned when the ayah number is below 1.
	ErrInvalidVerse = errors.New("verse must be 1 or greater")

	// ErrEmptyNote is returned when a note has neither text nor audio.
	ErrEmptyNote = errors.New("note must have text or an audio attachment")

	// ErrMissingProject is returned when a note does not name its pass.
	ErrMissingProject = errors.New("note must belong to a project")

	// ErrEmptyProjectName is returned when a pass has no name.
	ErrEmptyProjectName = errors.New("project name must not be empty")

	// ErrInvalidColor is returned when a pass color is not "#rrggbb".
	ErrInvalidColor = errors.New("project color must be in #rrggbb form")

	// ErrInvalidSortOrder is returned for an unknown note sort order.
	ErrInvalidSortOrder = errors.New("unknown sort order")

	// ErrInvalidEmail is returned when a registration email is unusable.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when a registration password is too short.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)
