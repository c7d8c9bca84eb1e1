package store

import (
	"context"
	"errors"
	"testing"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAudioStore(t *testing.T) AudioStore {
	t.Helper()
	s, err := NewAudioFileStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestAudioStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestAudioStore(t)
	ctx := context.Background()

	url, err := s.Save(ctx, 1, "n1", []byte("opus bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/api/notes/n1/audio", url)

	data, err := s.Load(ctx, 1, "n1")
	require.NoError(t, err)
	assert.Equal(t, []byte("opus bytes"), data)
}

func TestAudioStore_LoadMissing(t *testing.T) {
	s := newTestAudioStore(t)

	_, err := s.Load(context.Background(), 1, "ghost")
	assert.True(t, errors.Is(err, ErrAudioNotFound))
}

func TestAudioStore_SaveOverwrites(t *testing.T) {
	s := newTestAudioStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, 1, "n1", []byte("first take"))
	require.NoError(t, err)
	_, err = s.Save(ctx, 1, "n1", []byte("second take"))
	require.NoError(t, err)

	data, err := s.Load(ctx, 1, "n1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second take"), data)
}

func TestAudioStore_RemoveIdempotent(t *testing.T) {
	s := newTestAudioStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, 1, "n1", []byte("take"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, 1, "n1"))
	require.NoError(t, s.Remove(ctx, 1, "n1"))

	_, err = s.Load(ctx, 1, "n1")
	assert.True(t, errors.Is(err, ErrAudioNotFound))
}

func TestAudioStore_UsersIsolated(t *testing.T) {
	s := newTestAudioStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, 1, "n1", []byte("mine"))
	require.NoError(t, err)

	_, err = s.Load(ctx, 2, "n1")
	assert.True(t, errors.Is(err, ErrAudioNotFound))
}

func TestNewAudioFileStore_EmptyDir(t *testing.T) {
	_, err := NewAudioFileStore("", logger.Nop())
	assert.Error(t, err)
}
