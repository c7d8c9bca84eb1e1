package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

// prefetchConcurrency caps parallel upstream lookups during cache warming.
const prefetchConcurrency = 4

const arabicEdition = "quran-uthmani"

// quranService resolves verse references against the alquran.cloud-style
// HTTP API and memoises every successful lookup. Verse text is immutable,
// so cached entries never expire.
type quranService struct {
	client  *resty.Client
	edition string

	mu    sync.RWMutex
	cache map[string]models.Verse

	logger *logger.Logger
}

// ayahEditionsResponse mirrors the upstream editions endpoint payload:
// one entry per requested edition for a single ayah.
type ayahEditionsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   []struct {
		Text  string `json:"text"`
		Surah struct {
			Number      int    `json:"number"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
		NumberInSurah int `json:"numberInSurah"`
		Edition       struct {
			Identifier string `json:"identifier"`
		} `json:"edition"`
	} `json:"data"`
}

func NewQuranService(cfg config.Quran, logger *logger.Logger) QuranService {
	client := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.RequestTimeout)

	return &quranService{
		client:  client,
		edition: cfg.TranslationEdition,
		cache:   make(map[string]models.Verse),
		logger:  logger,
	}
}

// GetVerse returns the Arabic text and configured translation of one ayah.
//
// Returns ErrVerseNotFound when the upstream API does not know the
// reference; other upstream failures are wrapped and returned as-is.
func (s *quranService) GetVerse(ctx context.Context, surah, verse int) (models.Verse, error) {
	log := logger.FromContext(ctx)

	if surah < models.MinSurah || surah > models.MaxSurah || verse < models.MinVerse {
		return models.Verse{}, fmt.Errorf("%w: %d:%d", ErrVerseNotFound, surah, verse)
	}

	key := fmt.Sprintf("%d:%d", surah, verse)

	s.mu.RLock()
	cached, hit := s.cache[key]
	s.mu.RUnlock()
	if hit {
		return cached, nil
	}

	var body ayahEditionsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&body).
		SetPathParams(map[string]string{
			"reference": key,
			"editions":  arabicEdition + "," + s.edition,
		}).
		Get("/ayah/{reference}/editions/{editions}")
	if err != nil {
		log.Err(err).Str("reference", key).Msg("verse lookup request failed")
		return models.Verse{}, fmt.Errorf("verse lookup request failed: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return models.Verse{}, fmt.Errorf("%w: %s", ErrVerseNotFound, key)
	}
	if resp.IsError() || len(body.Data) == 0 {
		log.Error().Str("reference", key).Int("status", resp.StatusCode()).Msg("verse lookup returned an error")
		return models.Verse{}, fmt.Errorf("verse lookup returned status %d", resp.StatusCode())
	}

	result := models.Verse{
		Surah:   surah,
		Verse:   verse,
		Edition: s.edition,
	}
	for _, entry := range body.Data {
		result.SurahName = entry.Surah.EnglishName
		if entry.Edition.Identifier == arabicEdition {
			result.Arabic = entry.Text
		} else {
			result.Translation = entry.Text
		}
	}

	s.mu.Lock()
	s.cache[key] = result
	s.mu.Unlock()

	return result, nil
}

// PrefetchVerses warms the cache for every distinct reference in notes.
// Failures are logged and swallowed; a cold cache entry just means the
// next GetVerse pays the upstream round trip.
func (s *quranService) PrefetchVerses(ctx context.Context, notes []models.Note) {
	log := logger.FromContext(ctx)

	seen := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		seen[n.Reference()] = n
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)
	for _, n := range seen {
		n := n
		g.Go(func() error {
			if _, err := s.GetVerse(ctx, n.Surah, n.Verse); err != nil {
				log.Warn().Err(err).Str("reference", n.Reference()).Msg("verse prefetch failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}
