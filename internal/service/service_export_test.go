package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestExportService() ExportService {
	projects := &mockProjectRepository{
		getProjectFn: func(_ context.Context, userID int64, projectID string) (models.Project, error) {
			return models.Project{ProjectID: projectID, UserID: userID, Name: "Ramadan pass", Description: "Juz by juz"}, nil
		},
	}
	notes := &mockNoteRepository{
		listNotesFn: func(_ context.Context, _ int64, query models.NoteListQuery) ([]models.Note, error) {
			// exports are always reference-ordered and pass-scoped
			if query.ProjectID != "p1" || query.Sort != models.SortByReference {
				return nil, errStorage
			}
			return []models.Note{
				{NoteID: "n1", ProjectID: "p1", Surah: 2, Verse: 255, Text: "Ayat al-Kursi"},
				{NoteID: "n2", ProjectID: "p1", Surah: 18, Verse: 10, Text: "The cave", AudioURL: "/api/notes/n2/audio"},
			}, nil
		},
	}
	return NewExportService(projects, notes, logger.Nop())
}

func TestParseExportFormat(t *testing.T) {
	for value, want := range map[string]ExportFormat{
		"":         ExportJSON,
		"json":     ExportJSON,
		"yaml":     ExportYAML,
		"markdown": ExportMarkdown,
		"md":       ExportMarkdown,
		"MARKDOWN": ExportMarkdown,
	} {
		format, err := ParseExportFormat(value)
		require.NoError(t, err, value)
		assert.Equal(t, want, format, value)
	}

	_, err := ParseExportFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownExportFormat)
}

func TestExportProject_JSON(t *testing.T) {
	data, contentType, err := newTestExportService().ExportProject(context.Background(), 1, "p1", ExportJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var doc struct {
		Project   models.Project `json:"project"`
		Notes     []models.Note  `json:"notes"`
		NoteCount int            `json:"note_count"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Ramadan pass", doc.Project.Name)
	assert.Equal(t, 2, doc.NoteCount)
	require.Len(t, doc.Notes, 2)
	assert.Equal(t, "2:255", doc.Notes[0].Reference())
}

func TestExportProject_YAML(t *testing.T) {
	data, contentType, err := newTestExportService().ExportProject(context.Background(), 1, "p1", ExportYAML)
	require.NoError(t, err)
	assert.Equal(t, "application/yaml", contentType)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc["note_count"])
}

func TestExportProject_Markdown(t *testing.T) {
	data, contentType, err := newTestExportService().ExportProject(context.Background(), 1, "p1", ExportMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "text/markdown; charset=utf-8", contentType)

	text := string(data)
	assert.Contains(t, text, "# Ramadan pass")
	assert.Contains(t, text, "## 2:255")
	assert.Contains(t, text, "Ayat al-Kursi")
	assert.Contains(t, text, "[voice note](/api/notes/n2/audio)")
}

func TestExportProject_ProjectNotFound(t *testing.T) {
	projects := &mockProjectRepository{
		getProjectFn: func(_ context.Context, _ int64, _ string) (models.Project, error) {
			return models.Project{}, store.ErrProjectNotFound
		},
	}
	svc := NewExportService(projects, &mockNoteRepository{}, logger.Nop())

	_, _, err := svc.ExportProject(context.Background(), 1, "ghost", ExportJSON)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}
