package service

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShareService(note models.Note) ShareService {
	notes := &mockNoteRepository{
		getNoteFn: func(_ context.Context, _ int64, _ string) (models.Note, error) {
			return note, nil
		},
	}
	return NewShareService(notes, config.Share{PublicBaseURL: "https://notes.example.org/"}, logger.Nop())
}

func TestShareService_ShareLinks(t *testing.T) {
	svc := newTestShareService(models.Note{
		NoteID: "n1", Surah: 2, Verse: 255, Text: "Ayat al-Kursi stopped me today",
	})

	links, err := svc.ShareLinks(context.Background(), 1, "n1")
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example.org/api/notes/n1/card.png", links.CardURL)
	assert.Equal(t, "Qur'an 2:255 - Ayat al-Kursi stopped me today", links.Text)
	assert.True(t, strings.HasPrefix(links.Twitter, "https://twitter.com/intent/tweet?text="))
	assert.True(t, strings.HasPrefix(links.WhatsApp, "https://wa.me/?text="))
	assert.True(t, strings.HasPrefix(links.Telegram, "https://t.me/share/url?url="))
	assert.NotContains(t, links.Twitter, " ", "caption must be query-escaped")
}

func TestShareService_ShareLinks_LongTextIsTruncated(t *testing.T) {
	svc := newTestShareService(models.Note{
		NoteID: "n1", Surah: 2, Verse: 255,
		Text: strings.Repeat("reflection ", 40),
	})

	links, err := svc.ShareLinks(context.Background(), 1, "n1")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(links.Text), len("Qur'an 2:255 - ")+shareCaptionLimit+len("..."))
	assert.True(t, strings.HasSuffix(links.Text, "..."))
}

func TestShareService_ShareLinks_ArabicCaptionStaysValidUTF8(t *testing.T) {
	// 240 runes of multi-byte text, no spaces to trim on
	svc := newTestShareService(models.Note{
		NoteID: "n1", Surah: 2, Verse: 255,
		Text: strings.Repeat("تدبرها", 40),
	})

	links, err := svc.ShareLinks(context.Background(), 1, "n1")
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(links.Text))
	assert.True(t, strings.HasSuffix(links.Text, "..."))
	expected := utf8.RuneCountInString("Qur'an 2:255 - ") + shareCaptionLimit + len("...")
	assert.Equal(t, expected, utf8.RuneCountInString(links.Text))
}

func TestShareService_ShareLinks_AudioOnlyNote(t *testing.T) {
	svc := newTestShareService(models.Note{
		NoteID: "n1", Surah: 18, Verse: 10, AudioURL: "/api/notes/n1/audio",
	})

	links, err := svc.ShareLinks(context.Background(), 1, "n1")
	require.NoError(t, err)
	assert.Equal(t, "Qur'an 18:10", links.Text)
}

func TestShareService_ShareLinks_NoteNotFound(t *testing.T) {
	notes := &mockNoteRepository{
		getNoteFn: func(_ context.Context, _ int64, _ string) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := NewShareService(notes, config.Share{}, logger.Nop())

	_, err := svc.ShareLinks(context.Background(), 1, "ghost")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestShareService_RenderCard(t *testing.T) {
	svc := newTestShareService(models.Note{
		NoteID: "n1", Surah: 2, Verse: 255,
		Text: "A long reflection that should wrap across several lines on the card " +
			strings.Repeat("and keep going ", 20),
	})

	data, err := svc.RenderCard(context.Background(), 1, "n1")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeight, img.Bounds().Dy())
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	assert.Equal(t, []string{"abcde", "fghij"}, wrapText("abcdefghij", 5))
	assert.Empty(t, wrapText("", 10))
	assert.Empty(t, wrapText("anything", 0))

	lines := wrapText("first paragraph\n\nsecond paragraph", 40)
	assert.Equal(t, []string{"first paragraph", "", "second paragraph"}, lines)
}
