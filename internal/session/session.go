package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

var ErrMalformedToken = errors.New("malformed_token")

// Session guarda o token bruto e o usuário derivado dele. É criado no
// login, lido a cada chamada à API e destruído no logout.
type Session struct {
	mu    sync.RWMutex
	id    string
	token string
	user  *models.User
}

// Restore reconstrói a sessão a partir de um token já emitido. Um token
// malformado resulta em uma sessão deslogada, sem erro.
func Restore(token string) *Session {
	s := &Session{}
	user, err := DecodeUser(token)
	if err != nil {
		return s
	}
	s.token = token
	s.user = user
	return s
}

func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Token implementa apiclient.TokenSource.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *models.User {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// DecodeUser lê as claims do segmento do meio do token sem validar a
// assinatura nem a expiração; quem valida é o backend.
func DecodeUser(token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMalformedToken
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithPaddingAllowed())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// alg desconhecido não impede a leitura das claims
		if !errors.Is(err, jwt.ErrTokenUnverifiable) {
			return nil, ErrMalformedToken
		}
	}

	email, _ := claims["email"].(string)
	perfil, ok := claims["perfil"].(string)
	if !ok {
		perfil, _ = claims["role"].(string)
	}

	return &models.User{
		ID:     models.ID(email),
		Email:  email,
		Perfil: models.Perfil(perfil),
	}, nil
}
