// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anas Zait

// Package adapter provides the transport layer the client uses to talk to
// the tadabbur server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/anaszait/tadabbur/models"
)

// ServerAdapter defines transport-agnostic communication with the tadabbur
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after
	// a successful Register or Login, and explicitly when a persisted
	// session is restored.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the bearer
	// token returned in the Authorization response header via SetToken and
	// returns the created user record.
	Register(ctx context.Context, user models.User) (models.User, string, error)

	// Login authenticates with email and password. On success it stores
	// the bearer token via SetToken and returns the user record.
	Login(ctx context.Context, user models.User) (models.User, string, error)

	// GetVersion reports the server's application version.
	GetVersion(ctx context.Context) (string, error)

	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)

	// DeleteProject removes a reading pass and returns how many notes went
	// with it.
	DeleteProject(ctx context.Context, projectID string) (int64, error)

	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	// GetNoteStates fetches the compact sync descriptors of every note the
	// authenticated user owns, tombstones included. The sync planner
	// compares them against the local cache without downloading bodies.
	GetNoteStates(ctx context.Context) ([]models.NoteState, error)

	// GetNotesByIDs fetches full note bodies for the given IDs, typically
	// the Download bucket of a sync plan.
	GetNotesByIDs(ctx context.Context, noteIDs []string) ([]models.Note, error)

	// GetVerse looks up the text of a single ayah through the server.
	GetVerse(ctx context.Context, surah, verse int) (models.Verse, error)

	// GetShareLinks fetches the share card URL and social deep links for
	// a note.
	GetShareLinks(ctx context.Context, noteID string) (models.ShareLinks, error)
}
