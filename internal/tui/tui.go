// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anas Zait

// Package tui is the terminal user interface of the tadabbur client,
// built on Bubble Tea. It runs in two phases: LoginFlow collects
// credentials and returns a session, then MainLoop drives the reading
// passes, notes, and sync screens until the user quits or signs out.
package tui

import (
	"context"
	"errors"

	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}
	return &TUI{services: services}, nil
}

// LoginFlow runs the welcome/login/register screens until the user
// authenticates or quits. Returns [ErrUserQuit] when the user leaves
// without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Session{}, result.err
	}
	if result.resultSession.Token == "" {
		return models.Session{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the main screens. Returns logout=true when the user
// signed out rather than quitting, so the caller can restart the login
// flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
