package store

// Schema and statements of the client-side SQLite cache. The cache mirrors
// the server's notes and projects for offline browsing; the dirty flag
// drives the background sync job.
const (
	clientSchema = `
CREATE TABLE IF NOT EXISTS session (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    user_id    INTEGER NOT NULL,
    email      TEXT    NOT NULL,
    token      TEXT    NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
    project_id  TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    color       TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
    note_id    TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    surah      INTEGER NOT NULL,
    verse      INTEGER NOT NULL,
    text       TEXT NOT NULL DEFAULT '',
    audio_url  TEXT NOT NULL DEFAULT '',
    version    INTEGER NOT NULL DEFAULT 0,
    deleted    INTEGER NOT NULL DEFAULT 0,
    dirty      INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_local_notes_project ON notes (project_id);
`

	clientSaveSession = `INSERT INTO session (id, user_id, email, token, created_at)
    VALUES (1, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id, email = excluded.email,
        token = excluded.token, created_at = excluded.created_at;`

	clientLoadSession  = `SELECT user_id, email, token, created_at FROM session WHERE id = 1;`
	clientClearSession = `DELETE FROM session;`

	clientUpsertProject = `INSERT INTO projects (project_id, name, description, color, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?)
    ON CONFLICT (project_id) DO UPDATE SET name = excluded.name, description = excluded.description,
        color = excluded.color, updated_at = excluded.updated_at;`

	clientListProjects  = `SELECT project_id, name, description, color, created_at, updated_at FROM projects ORDER BY created_at;`
	clientDeleteProject = `DELETE FROM projects WHERE project_id = ?;`

	clientUpsertNote = `INSERT INTO notes (note_id, project_id, surah, verse, text, audio_url, version, deleted, dirty, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT (note_id) DO UPDATE SET project_id = excluded.project_id, surah = excluded.surah,
        verse = excluded.verse, text = excluded.text, audio_url = excluded.audio_url,
        version = excluded.version, deleted = excluded.deleted, dirty = excluded.dirty,
        updated_at = excluded.updated_at;`

	clientGetNote = `SELECT note_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at
    FROM notes WHERE note_id = ?;`

	clientListNotes = `SELECT note_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at
    FROM notes WHERE deleted = 0 ORDER BY created_at DESC;`

	clientNoteStates = `SELECT note_id, project_id, surah, verse, text, audio_url, version, deleted, dirty, created_at, updated_at
    FROM notes;`

	clientDirtyNotes = `SELECT note_id, project_id, surah, verse, text, audio_url, version, deleted, created_at, updated_at
    FROM notes WHERE dirty = 1;`

	clientDeleteNote = `DELETE FROM notes WHERE note_id = ?;`

	clientMarkNoteDeleted = `UPDATE notes SET deleted = 1, dirty = 1, updated_at = ? WHERE note_id = ?;`
)
