package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerseAPIStub(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		if r.URL.Path == "/ayah/114:999/editions/quran-uthmani,en.sahih" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"code":404,"status":"NOT FOUND","data":"reference does not exist"}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"code": 200,
			"status": "OK",
			"data": [
				{
					"text": "ٱللَّهُ لَآ إِلَٰهَ إِلَّا هُوَ",
					"numberInSurah": 255,
					"surah": {"number": 2, "englishName": "Al-Baqarah"},
					"edition": {"identifier": "quran-uthmani"}
				},
				{
					"text": "Allah - there is no deity except Him",
					"numberInSurah": 255,
					"surah": {"number": 2, "englishName": "Al-Baqarah"},
					"edition": {"identifier": "en.sahih"}
				}
			]
		}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestQuranService(baseURL string) QuranService {
	return NewQuranService(config.Quran{
		APIBaseURL:         baseURL,
		TranslationEdition: "en.sahih",
		RequestTimeout:     5 * time.Second,
	}, logger.Nop())
}

func TestQuranService_GetVerse(t *testing.T) {
	var hits atomic.Int64
	srv := newVerseAPIStub(t, &hits)
	svc := newTestQuranService(srv.URL)

	verse, err := svc.GetVerse(context.Background(), 2, 255)
	require.NoError(t, err)

	assert.Equal(t, 2, verse.Surah)
	assert.Equal(t, 255, verse.Verse)
	assert.Equal(t, "Al-Baqarah", verse.SurahName)
	assert.NotEmpty(t, verse.Arabic)
	assert.Equal(t, "Allah - there is no deity except Him", verse.Translation)
	assert.Equal(t, "en.sahih", verse.Edition)
}

func TestQuranService_GetVerse_Cached(t *testing.T) {
	var hits atomic.Int64
	srv := newVerseAPIStub(t, &hits)
	svc := newTestQuranService(srv.URL)

	_, err := svc.GetVerse(context.Background(), 2, 255)
	require.NoError(t, err)
	_, err = svc.GetVerse(context.Background(), 2, 255)
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load(), "second lookup must come from the cache")
}

func TestQuranService_GetVerse_OutOfRange(t *testing.T) {
	var hits atomic.Int64
	srv := newVerseAPIStub(t, &hits)
	svc := newTestQuranService(srv.URL)

	_, err := svc.GetVerse(context.Background(), 115, 1)
	assert.ErrorIs(t, err, ErrVerseNotFound)
	assert.Zero(t, hits.Load(), "out-of-range references never reach upstream")
}

func TestQuranService_GetVerse_UpstreamNotFound(t *testing.T) {
	var hits atomic.Int64
	srv := newVerseAPIStub(t, &hits)
	svc := newTestQuranService(srv.URL)

	_, err := svc.GetVerse(context.Background(), 114, 999)
	assert.ErrorIs(t, err, ErrVerseNotFound)
}

func TestQuranService_PrefetchVerses(t *testing.T) {
	var hits atomic.Int64
	srv := newVerseAPIStub(t, &hits)
	svc := newTestQuranService(srv.URL)

	notes := []models.Note{
		{Surah: 2, Verse: 255},
		{Surah: 2, Verse: 255}, // duplicate reference, fetched once
		{Surah: 18, Verse: 10},
	}
	svc.PrefetchVerses(context.Background(), notes)

	assert.Equal(t, int64(2), hits.Load())

	// warm cache: no further upstream hits
	_, err := svc.GetVerse(context.Background(), 2, 255)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}
