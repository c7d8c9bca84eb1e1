package service

import (
	"context"

	"github.com/anaszait/tadabbur/models"
)

// syncService is the concrete implementation of SyncService.
// It performs a purely in-memory comparison of server and client
// NoteState slices; no storage layer or logger is required because the
// operation is stateless and produces no side effects.
type syncService struct{}

// NewSyncService constructs a SyncService ready for use.
func NewSyncService() SyncService {
	return &syncService{}
}

// BuildSyncPlan implements SyncService.
//
// It builds two O(1) lookup indexes from the input slices, then makes two
// linear passes to classify every note into exactly one bucket:
//
//   - Pass 1 (over serverStates): handles notes the server knows about,
//     whether or not they also exist on the client.
//   - Pass 2 (over clientStates): catches notes that exist only on the
//     client and were therefore invisible in pass 1.
//
// Classification leans on two facts: only server writes bump a note's
// version, and the client cache marks its own edits Dirty. A dirty note at
// the server's version is a plain upload; a dirty note the server has also
// moved past is a conflict.
//
// ctx cancellation is checked at the start of each iteration so callers
// can abort early on large collections.
func (s *syncService) BuildSyncPlan(
	ctx context.Context,
	serverStates, clientStates []models.NoteState,
) (models.SyncPlan, error) {
	var plan models.SyncPlan

	clientIndex := make(map[string]models.NoteState, len(clientStates))
	for _, cs := range clientStates {
		clientIndex[cs.NoteID] = cs
	}

	serverIndex := make(map[string]models.NoteState, len(serverStates))
	for _, ss := range serverStates {
		serverIndex[ss.NoteID] = ss
	}

	// Pass 1: iterate over server states.
	for _, ss := range serverStates {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		cs, existsOnClient := clientIndex[ss.NoteID]

		if !existsOnClient {
			if !ss.Deleted {
				// live server note the client has never seen
				plan.Download = append(plan.Download, ss)
			}
			// deleted && absent on client: created and deleted on the server
			// before the client ever synced it — nothing to do
			continue
		}

		switch {
		case ss.Version == cs.Version:
			switch {
			case ss.Deleted && cs.Deleted:
				// both sides agree it is gone

			case ss.Deleted && !cs.Deleted:
				plan.DeleteClient = append(plan.DeleteClient, ss)

			case !ss.Deleted && cs.Deleted:
				plan.DeleteServer = append(plan.DeleteServer, cs)

			case ss.Hash == cs.Hash:
				// identical content, already in sync

			case cs.Dirty:
				// only server writes bump the version, so diverged content
				// at the same version is an offline edit awaiting push
				plan.Upload = append(plan.Upload, cs)

			default:
				// diverged content with no local edit: the cache row is
				// damaged, restore the server copy
				plan.Download = append(plan.Download, ss)
			}

		case ss.Version > cs.Version:
			switch {
			case ss.Deleted:
				plan.DeleteClient = append(plan.DeleteClient, ss)

			case cs.Dirty:
				// both sides changed since the client last synced
				plan.Conflict = append(plan.Conflict, ss)

			default:
				plan.Download = append(plan.Download, ss)
			}

		default: // ss.Version < cs.Version
			if cs.Deleted {
				plan.DeleteServer = append(plan.DeleteServer, cs)
			} else {
				plan.Upload = append(plan.Upload, cs)
			}
		}
	}

	// Pass 2: find client-only notes.
	for _, cs := range clientStates {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		if _, existsOnServer := serverIndex[cs.NoteID]; existsOnServer {
			continue
		}

		if !cs.Deleted {
			// never pushed to the server
			plan.Upload = append(plan.Upload, cs)
		}
		// deleted && absent on server: tombstone of a note the server never
		// knew about — nothing to do
	}

	return plan, nil
}
