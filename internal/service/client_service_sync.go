package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
)

type clientSyncService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
	planner    SyncService
}

func NewClientSyncService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) ClientSyncService {
	return &clientSyncService{
		localStore: localStore,
		adapter:    serverAdapter,
		planner:    NewSyncService(),
	}
}

// FullSync implements [ClientSyncService]. It refreshes the cached pass
// listing, compares the server's note states against the local cache, and
// executes the resulting plan.
func (s *clientSyncService) FullSync(ctx context.Context) error {
	projects, err := s.adapter.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	if err = s.localStore.UpsertProjects(ctx, projects); err != nil {
		return fmt.Errorf("cache project listing: %w", err)
	}

	serverStates, err := s.adapter.GetNoteStates(ctx)
	if err != nil {
		return fmt.Errorf("get server note states: %w", err)
	}

	clientStates, err := s.localStore.NoteStates(ctx)
	if err != nil {
		return fmt.Errorf("get local note states: %w", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, serverStates, clientStates)
	if err != nil {
		return fmt.Errorf("build sync plan: %w", err)
	}

	if err = s.ExecutePlan(ctx, plan); err != nil {
		return fmt.Errorf("execute sync plan: %w", err)
	}
	return nil
}

// ExecutePlan implements [ClientSyncService]. Conflicted notes are
// resolved in the server's favour: they join the download set, and the
// local edit is overwritten.
func (s *clientSyncService) ExecutePlan(ctx context.Context, plan models.SyncPlan) error {
	download := append(collectNoteIDs(plan.Download), collectNoteIDs(plan.Conflict)...)
	if len(download) > 0 {
		notes, err := s.adapter.GetNotesByIDs(ctx, download)
		if err != nil {
			return fmt.Errorf("download notes in plan: %w", err)
		}
		if err = s.localStore.UpsertNotes(ctx, notes); err != nil {
			return fmt.Errorf("save downloaded notes locally: %w", err)
		}
	}

	if len(plan.Upload) > 0 {
		dirty, err := s.localStore.DirtyNotes(ctx)
		if err != nil {
			return fmt.Errorf("load dirty notes: %w", err)
		}
		dirtyByID := make(map[string]models.Note, len(dirty))
		for _, n := range dirty {
			dirtyByID[n.NoteID] = n
		}

		for _, st := range plan.Upload {
			note, stillDirty := dirtyByID[st.NoteID]
			if !stillDirty {
				// cleaned between planning and execution, nothing to push
				continue
			}
			if err := s.uploadNote(ctx, note); err != nil {
				return err
			}
		}
	}

	if len(plan.DeleteClient) > 0 {
		if err := s.localStore.DeleteNotes(ctx, collectNoteIDs(plan.DeleteClient)); err != nil {
			return fmt.Errorf("delete notes on client: %w", err)
		}
	}

	for _, st := range plan.DeleteServer {
		if err := s.deleteOnServer(ctx, st.NoteID); err != nil {
			return err
		}
	}

	return nil
}

// uploadNote pushes a single dirty note. Version 0 means the note was
// created offline and the server has never seen it. The server echo is
// written back to the cache, which records the assigned version and clears
// the dirty flag in one write.
func (s *clientSyncService) uploadNote(ctx context.Context, note models.Note) error {
	var pushed models.Note
	var err error
	if note.Version == 0 {
		pushed, err = s.adapter.CreateNote(ctx, note)
	} else {
		pushed, err = s.adapter.UpdateNote(ctx, note)
	}
	if err != nil {
		// The server copy moved while we were preparing the push; fetch
		// it and let the next pass re-plan.
		if errors.Is(err, adapter.ErrConflict) {
			return s.refreshFromServer(ctx, note.NoteID)
		}
		return fmt.Errorf("push note %s: %w", note.NoteID, err)
	}

	if err = s.localStore.UpsertNotes(ctx, []models.Note{pushed}); err != nil {
		return fmt.Errorf("save pushed note %s: %w", note.NoteID, err)
	}
	return nil
}

// deleteOnServer propagates a local tombstone. Once the server confirms
// (or reports the note already gone), the tombstone row is dropped.
func (s *clientSyncService) deleteOnServer(ctx context.Context, noteID string) error {
	err := s.adapter.DeleteNote(ctx, noteID)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("delete server note %s: %w", noteID, err)
	}

	if err = s.localStore.DeleteNotes(ctx, []string{noteID}); err != nil {
		return fmt.Errorf("drop local tombstone %s: %w", noteID, err)
	}
	return nil
}

func (s *clientSyncService) refreshFromServer(ctx context.Context, noteID string) error {
	notes, err := s.adapter.GetNotesByIDs(ctx, []string{noteID})
	if err != nil {
		return fmt.Errorf("download conflict note %s: %w", noteID, err)
	}
	if len(notes) == 0 {
		return nil
	}

	if err = s.localStore.UpsertNotes(ctx, notes); err != nil {
		return fmt.Errorf("save conflict note %s: %w", noteID, err)
	}
	return nil
}

func collectNoteIDs(states []models.NoteState) []string {
	ids := make([]string, 0, len(states))
	for _, st := range states {
		ids = append(ids, st.NoteID)
	}
	return ids
}
