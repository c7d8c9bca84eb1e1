package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/utils"
	"github.com/anaszait/tadabbur/models"
)

type clientAuthService struct {
	localStore store.LocalStore
	adapter    adapter.ServerAdapter
}

func NewClientAuthService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter}
}

// Register implements [ClientAuthService]. It creates the account on the
// server and persists the resulting session locally.
func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	registered, token, err := s.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return s.saveSession(ctx, registered.Email, token)
}

// Login implements [ClientAuthService]. It authenticates against the
// server and persists the resulting session locally. An HTTP 401 is
// reported as [ErrWrongPassword]; the server does not distinguish an
// unknown email from a wrong password.
func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	loggedIn, token, err := s.adapter.Login(ctx, user)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Session{}, ErrWrongPassword
		}
		return models.Session{}, mapAdapterError(err)
	}

	return s.saveSession(ctx, loggedIn.Email, token)
}

// RestoreSession implements [ClientAuthService]. It loads the persisted
// session and re-arms the adapter with its token.
func (s *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := s.localStore.LoadSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s.adapter.SetToken(session.Token)
	return session, nil
}

// Logout implements [ClientAuthService]. It clears the persisted session
// and drops the adapter token. The note cache is kept; it belongs to
// whoever logs in next on this machine, which on a personal device is the
// same user.
func (s *clientAuthService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.localStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *clientAuthService) saveSession(ctx context.Context, email, token string) (models.Session, error) {
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("parse user id from token: %w", err)
	}

	session := models.Session{
		UserID:    userID,
		Email:     email,
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err = s.localStore.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}
