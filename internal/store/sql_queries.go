package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/anaszait/tadabbur/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createProject = `INSERT INTO projects (project_id, user_id, name, description, color)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING project_id, user_id, name, description, color, created_at, updated_at;`

	getProject = `SELECT project_id, user_id, name, description, color, created_at, updated_at
    FROM projects
    WHERE project_id = $1 AND user_id = $2;`

	listProjects = `SELECT project_id, user_id, name, description, color, created_at, updated_at
    FROM projects
    WHERE user_id = $1
    ORDER BY created_at;`

	updateProject = `UPDATE projects
    SET name = $1, description = $2, color = $3, updated_at = NOW()
    WHERE project_id = $4 AND user_id = $5
    RETURNING project_id, user_id, name, description, color, created_at, updated_at;`

	// cascade: notes first, then the pass itself, inside one transaction
	deleteProjectNotes = `DELETE FROM notes
    WHERE project_id = $1 AND user_id = $2;`

	deleteProject = `DELETE FROM projects
    WHERE project_id = $1 AND user_id = $2;`

	createNote = `INSERT INTO notes (note_id, user_id, project_id, surah, verse, text, audio_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING note_id, user_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at;`

	getNote = `SELECT note_id, user_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at
    FROM notes
    WHERE note_id = $1 AND user_id = $2 AND NOT deleted;`

	updateNote = `UPDATE notes
    SET project_id = $1, surah = $2, verse = $3, text = $4, audio_url = $5, version = version + 1, updated_at = NOW()
    WHERE note_id = $6 AND user_id = $7 AND NOT deleted
    RETURNING note_id, user_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at;`

	// soft delete so offline clients learn about removals during sync
	deleteNote = `UPDATE notes
    SET deleted = TRUE, version = version + 1, updated_at = NOW()
    WHERE note_id = $1 AND user_id = $2 AND NOT deleted;`

	listAllNotes = `SELECT note_id, user_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at
    FROM notes
    WHERE user_id = $1;`
)

// noteColumns is the canonical column order shared by the squirrel-built
// queries and the scanNote helper.
var noteColumns = []string{
	"note_id", "user_id", "project_id", "surah", "verse", "text",
	"audio_url", "version", "deleted", "created_at", "updated_at",
}

// buildListNotesQuery assembles the dynamic note listing statement. The
// filters of query are optional; ordering maps the four supported sort
// orders onto index-friendly ORDER BY clauses.
func buildListNotesQuery(userID int64, query models.NoteListQuery) (string, []any, error) {
	b := sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"deleted": false}).
		PlaceholderFormat(sq.Dollar)

	if query.ProjectID != "" {
		b = b.Where(sq.Eq{"project_id": query.ProjectID})
	}
	if query.Surah != 0 {
		b = b.Where(sq.Eq{"surah": query.Surah})
	}
	if query.Search != "" {
		b = b.Where(sq.ILike{"text": "%" + query.Search + "%"})
	}

	switch query.Sort {
	case models.SortByReference:
		b = b.OrderBy("surah", "verse", "created_at")
	case models.SortByReferenceDesc:
		b = b.OrderBy("surah DESC", "verse DESC", "created_at DESC")
	case models.SortByCreated:
		b = b.OrderBy("created_at")
	default: // SortByCreatedDesc and the empty value
		b = b.OrderBy("created_at DESC")
	}

	return b.ToSql()
}

// buildNotesByIDsQuery assembles the bulk fetch used by sync. Soft-deleted
// notes are included on purpose.
func buildNotesByIDsQuery(userID int64, noteIDs []string) (string, []any, error) {
	return sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"note_id": noteIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
