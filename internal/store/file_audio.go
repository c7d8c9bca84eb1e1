package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/anaszait/tadabbur/internal/logger"
)

// audioFileStore is the filesystem implementation of [AudioStore]. Voice
// recordings live outside the relational database so that note rows stay
// lightweight; the database only keeps the relative URL.
//
// Layout: <dir>/<userID>/<noteID>.webm — one file per note, overwritten
// when the user re-records.
type audioFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewAudioFileStore constructs an [AudioStore] rooted at dir, creating the
// directory if necessary.
func NewAudioFileStore(dir string, logger *logger.Logger) (AudioStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("audio store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audio store: creating %s: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating audio file store")
	return &audioFileStore{dir: dir, logger: logger}, nil
}

// Save writes the recording bytes of a note and returns the relative URL
// under which the handler serves it back.
func (s *audioFileStore) Save(ctx context.Context, userID int64, noteID string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	userDir := filepath.Join(s.dir, strconv.FormatInt(userID, 10))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("audio store: creating user dir: %w", err)
	}

	path := s.path(userID, noteID)

	// write-then-rename so a crashed upload never leaves a torn file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("audio store: writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("audio store: renaming %s: %w", tmp, err)
	}

	return "/api/notes/" + noteID + "/audio", nil
}

// Load returns the stored recording of a note, or [ErrAudioNotFound].
func (s *audioFileStore) Load(ctx context.Context, userID int64, noteID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(userID, noteID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAudioNotFound
		}
		return nil, fmt.Errorf("audio store: reading: %w", err)
	}
	return data, nil
}

// Remove deletes the stored recording if present.
func (s *audioFileStore) Remove(ctx context.Context, userID int64, noteID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path(userID, noteID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("audio store: removing: %w", err)
	}
	return nil
}

func (s *audioFileStore) path(userID int64, noteID string) string {
	return filepath.Join(s.dir, strconv.FormatInt(userID, 10), noteID+".webm")
}
