package service

import (
	"context"
	"time"

	"github.com/anaszait/tadabbur/models"
)

// ClientAuthService defines the client-side contract for account access.
// Implementations talk to the server adapter and persist the resulting
// session in the local cache so the TUI can resume without re-entering
// credentials.
type ClientAuthService interface {
	// Register creates a new account on the server, stores the returned
	// bearer token in the local session, and returns the session.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates against the server, stores the returned bearer
	// token in the local session, and returns the session.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// RestoreSession loads a previously saved session from the local
	// cache and re-arms the adapter with its token. Returns
	// [store.ErrLocalSessionNotFound] (wrapped) when no session exists.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the persisted session and drops the adapter token.
	Logout(ctx context.Context) error
}

// ClientProjectService manages reading passes from the client. Writes go
// to the server first; the local cache is refreshed on success so the
// listing keeps working offline.
type ClientProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// ListProjects returns the server-side listing when reachable and
	// falls back to the local cache when the server cannot be contacted.
	ListProjects(ctx context.Context) ([]models.Project, error)

	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)

	// DeleteProject removes the pass on the server and from the cache.
	// Returns how many notes the server removed with it.
	DeleteProject(ctx context.Context, projectID string) (int64, error)
}

// ClientNoteService manages notes offline-first: every write lands in the
// local cache marked dirty and is pushed to the server by the next sync.
type ClientNoteService interface {
	// CreateNote assigns an ID, recovers a missing surah:verse reference
	// from the note text, and saves the note locally as dirty.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// ListNotes returns the cached notes, tombstones excluded.
	ListNotes(ctx context.Context) ([]models.Note, error)

	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote tombstones the note locally; the removal propagates to
	// the server on the next sync.
	DeleteNote(ctx context.Context, noteID string) error

	// MoveNote re-parents a cached note into another reading pass.
	MoveNote(ctx context.Context, noteID, projectID string) (models.Note, error)

	// LookupVerse fetches the ayah text through the server. Requires
	// connectivity.
	LookupVerse(ctx context.Context, surah, verse int) (models.Verse, error)

	// ShareNote fetches the share card URL and social deep links for a
	// note. Requires connectivity.
	ShareNote(ctx context.Context, noteID string) (models.ShareLinks, error)
}

// ClientSyncService synchronises the local note cache with the server.
type ClientSyncService interface {
	// FullSync performs a complete bidirectional synchronisation: it
	// fetches server and client state descriptors, builds a sync plan,
	// and executes every download, upload, and delete the plan calls
	// for. The project listing is refreshed in the same pass.
	FullSync(ctx context.Context) error

	// ExecutePlan carries out the actions described in plan. Conflicts
	// are resolved in the server's favour. Returns the first error
	// encountered.
	ExecutePlan(ctx context.Context, plan models.SyncPlan) error
}

// ClientSyncJob is a background worker that periodically calls FullSync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
