package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"
	"strings"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Share card geometry.
const (
	cardWidth  = 800
	cardHeight = 420
	cardMargin = 48

	// basicfont.Face7x13 glyph advance
	glyphWidth  = 7
	glyphHeight = 13
	lineSpacing = 8
)

// shareCaptionLimit bounds the excerpt length, in runes, inside share
// captions.
const shareCaptionLimit = 180

var (
	cardBackground = color.RGBA{R: 0x1b, G: 0x26, B: 0x1e, A: 0xff}
	cardAccent     = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	cardInk        = color.RGBA{R: 0xf2, G: 0xef, B: 0xe6, A: 0xff}
	cardMutedInk   = color.RGBA{R: 0xa8, G: 0xb5, B: 0xa8, A: 0xff}
)

// shareService is the concrete implementation of ShareService.
type shareService struct {
	noteRepository store.NoteRepository

	// publicBaseURL prefixes the card path so the links survive outside
	// the client.
	publicBaseURL string

	logger *logger.Logger
}

func NewShareService(noteRepository store.NoteRepository, cfg config.Share, logger *logger.Logger) ShareService {
	return &shareService{
		noteRepository: noteRepository,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:         logger,
	}
}

// ShareLinks builds the share caption and the social deep links of a note.
func (s *shareService) ShareLinks(ctx context.Context, userID int64, noteID string) (models.ShareLinks, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note lookup failed")
		return models.ShareLinks{}, fmt.Errorf("note lookup failed: %w", err)
	}

	cardURL := s.publicBaseURL + "/api/notes/" + note.NoteID + "/card.png"
	text := shareCaption(note)
	escaped := url.QueryEscape(text)

	return models.ShareLinks{
		CardURL:  cardURL,
		Text:     text,
		Twitter:  "https://twitter.com/intent/tweet?text=" + escaped,
		WhatsApp: "https://wa.me/?text=" + escaped,
		Telegram: "https://t.me/share/url?url=" + url.QueryEscape(cardURL) + "&text=" + escaped,
	}, nil
}

// RenderCard draws the note as a PNG: accent stripe, reference heading,
// wrapped note text and a footer.
func (s *shareService) RenderCard(ctx context.Context, userID int64, noteID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID).Msg("note lookup failed")
		return nil, fmt.Errorf("note lookup failed: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, 10, cardHeight), image.NewUniform(cardAccent), image.Point{}, draw.Src)

	y := cardMargin + glyphHeight
	drawLine(img, "Qur'an "+note.Reference(), cardMargin, y, cardAccent)
	y += glyphHeight + 2*lineSpacing

	maxChars := (cardWidth - 2*cardMargin) / glyphWidth
	for _, line := range wrapText(note.Text, maxChars) {
		if y > cardHeight-2*cardMargin {
			drawLine(img, "...", cardMargin, y, cardMutedInk)
			break
		}
		drawLine(img, line, cardMargin, y, cardInk)
		y += glyphHeight + lineSpacing
	}

	drawLine(img, "tadabbur", cardMargin, cardHeight-cardMargin, cardMutedInk)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding share card: %w", err)
	}
	return buf.Bytes(), nil
}

// shareCaption is the plain-text form of a shared note: reference plus a
// bounded excerpt. The limit counts runes, not bytes; Arabic excerpts must
// never be cut mid-rune.
func shareCaption(note models.Note) string {
	excerpt := strings.TrimSpace(note.Text)
	if runes := []rune(excerpt); len(runes) > shareCaptionLimit {
		head := string(runes[:shareCaptionLimit])
		if idx := strings.LastIndex(head, " "); idx > 0 {
			head = head[:idx]
		}
		excerpt = head + "..."
	}
	if excerpt == "" {
		return "Qur'an " + note.Reference()
	}
	return "Qur'an " + note.Reference() + " - " + excerpt
}

func drawLine(img draw.Image, text string, x, y int, ink color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// wrapText splits text into lines of at most maxChars characters,
// breaking on spaces. Words longer than a line are hard-cut.
func wrapText(text string, maxChars int) []string {
	if maxChars <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Fields(paragraph) {
			for len(word) > maxChars {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				lines = append(lines, word[:maxChars])
				word = word[maxChars:]
			}
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= maxChars:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" || paragraph == "" {
			lines = append(lines, current)
		}
	}

	// drop a trailing blank from a final newline
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
