package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

var (
	ErrTokenNotReceived = errors.New("token_not_received")
	ErrNoSession        = errors.New("no_session")
)

type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
}

type Holder struct {
	auth   Authenticator
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewHolder(auth Authenticator, store Store, ttl time.Duration, logger *slog.Logger) *Holder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Holder{
		auth:   auth,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Login troca as credenciais por um token e abre uma sessão nova.
func (h *Holder) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := h.auth.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.AccessToken == "" {
		return nil, ErrTokenNotReceived
	}

	user, err := DecodeUser(resp.AccessToken)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:    uuid.NewString(),
		token: resp.AccessToken,
		user:  user,
	}
	if err := h.store.Set(ctx, s.id, s.token, h.ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	h.logger.Info("session opened", "session_id", s.id, "email", user.Email, "perfil", user.Perfil)
	return s, nil
}

// Resume recarrega a sessão guardada. Token malformado encerra a sessão
// silenciosamente e devolve ErrNoSession.
func (h *Holder) Resume(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}

	token, err := h.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	s := Restore(token)
	if !s.Authenticated() {
		h.logger.Warn("discarding malformed session token", "session_id", id)
		if err := h.store.Delete(ctx, id); err != nil {
			h.logger.Error("failed to delete session", "session_id", id, "err", err)
		}
		return nil, ErrNoSession
	}

	s.id = id
	return s, nil
}

func (h *Holder) Logout(ctx context.Context, s *Session) error {
	if s == nil {
		return nil
	}
	id := s.ID()
	s.Logout()
	if id == "" {
		return nil
	}
	if err := h.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	h.logger.Info("session closed", "session_id", id)
	return nil
}
