package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/config"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/session"
)

const (
	ContextSession = "session"
	ContextUser    = "user"
)

// AuthMiddleware resolve a sessão pelo cookie do console ou, como
// alternativa, por um bearer token repassado direto pelo cliente.
func AuthMiddleware(holder *session.Holder, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s *session.Session

		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			s = session.Restore(token)
			if !s.Authenticated() {
				httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão inválida.")
				return
			}
		} else {
			id, err := c.Cookie(cfg.CookieName)
			if err != nil || id == "" {
				httperr.Abort(c, http.StatusUnauthorized, "missing_session", "Faça login para continuar.")
				return
			}

			s, err = holder.Resume(c.Request.Context(), id)
			if errors.Is(err, session.ErrNoSession) {
				ClearSessionCookie(c, cfg)
				httperr.Abort(c, http.StatusUnauthorized, "session_expired", "Sessão expirada.")
				return
			}
			if err != nil {
				httperr.Abort(c, http.StatusInternalServerError, "session_store_error", "Erro ao carregar a sessão.")
				return
			}
		}

		c.Set(ContextSession, s)
		c.Set(ContextUser, s.User())
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

func SetSessionCookie(c *gin.Context, cfg *config.Config, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, id, int(cfg.SessionTTL.Seconds()), "/", "", cfg.CookieSecure, true)
}

func ClearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.CookieSecure, true)
}
