package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/models"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the document type produced by ExportProject.
type ExportFormat string

const (
	ExportJSON     ExportFormat = "json"
	ExportYAML     ExportFormat = "yaml"
	ExportMarkdown ExportFormat = "markdown"
)

// ParseExportFormat maps the query-string value onto an ExportFormat.
// The empty value defaults to JSON.
func ParseExportFormat(value string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(value)) {
	case "", ExportJSON:
		return ExportJSON, nil
	case ExportYAML:
		return ExportYAML, nil
	case ExportMarkdown, "md":
		return ExportMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, value)
}

// exportDocument is the serialised shape shared by the JSON and YAML
// exports.
type exportDocument struct {
	Project    models.Project `json:"project" yaml:"project"`
	Notes      []models.Note  `json:"notes" yaml:"notes"`
	NoteCount  int            `json:"note_count" yaml:"note_count"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
}

// exportService is the concrete implementation of ExportService.
type exportService struct {
	projectRepository store.ProjectRepository
	noteRepository    store.NoteRepository

	logger *logger.Logger
}

func NewExportService(projectRepository store.ProjectRepository, noteRepository store.NoteRepository,
	logger *logger.Logger) ExportService {
	return &exportService{
		projectRepository: projectRepository,
		noteRepository:    noteRepository,
		logger:            logger,
	}
}

// ExportProject renders one reading pass with all of its live notes,
// ordered by reference, into the requested format. The second return
// value is the MIME type of the document.
func (s *exportService) ExportProject(ctx context.Context, userID int64, projectID string,
	format ExportFormat) ([]byte, string, error) {
	log := logger.FromContext(ctx)

	project, err := s.projectRepository.GetProject(ctx, userID, projectID)
	if err != nil {
		log.Err(err).Str("projectID", projectID).Msg("project lookup failed")
		return nil, "", fmt.Errorf("project lookup failed: %w", err)
	}

	notes, err := s.noteRepository.ListNotes(ctx, userID, models.NoteListQuery{
		ProjectID: projectID,
		Sort:      models.SortByReference,
	})
	if err != nil {
		log.Err(err).Str("projectID", projectID).Msg("note listing failed")
		return nil, "", fmt.Errorf("note listing failed: %w", err)
	}

	doc := exportDocument{
		Project:    project,
		Notes:      notes,
		NoteCount:  len(notes),
		ExportedAt: time.Now().UTC(),
	}

	switch format {
	case ExportJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("rendering json export: %w", err)
		}
		return data, "application/json", nil

	case ExportYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, "", fmt.Errorf("rendering yaml export: %w", err)
		}
		return data, "application/yaml", nil

	case ExportMarkdown:
		return renderMarkdown(doc), "text/markdown; charset=utf-8", nil
	}

	return nil, "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
}

// renderMarkdown produces a human-readable document: pass header, then one
// section per note with its reference as the heading.
func renderMarkdown(doc exportDocument) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Project.Name)
	if doc.Project.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", doc.Project.Description)
	}
	fmt.Fprintf(&b, "%d notes, exported %s\n", doc.NoteCount, doc.ExportedAt.Format("2006-01-02"))

	for _, note := range doc.Notes {
		fmt.Fprintf(&b, "\n## %s\n\n", note.Reference())
		if note.Text != "" {
			fmt.Fprintf(&b, "%s\n", note.Text)
		}
		if note.AudioURL != "" {
			fmt.Fprintf(&b, "\n[voice note](%s)\n", note.AudioURL)
		}
	}

	return []byte(b.String())
}
