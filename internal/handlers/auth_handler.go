package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/config"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/session"
	"github.com/BruksfildServices01/salon-console/internal/validators"
)

type AuthHandler struct {
	holder *session.Holder
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(holder *session.Holder, cfg *config.Config, d *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{holder: holder, config: cfg, audit: d}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	s, err := h.holder.Login(c.Request.Context(), email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrTokenNotReceived), errors.Is(err, session.ErrMalformedToken):
		httperr.BadGateway(c, "token_not_received", "Token não recebido.")
		return
	case apiclient.IsUnauthorized(err) || apiclient.StatusOf(err) == http.StatusNotFound:
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	default:
		writeError(c, err, "login_failed", "Erro ao fazer login.")
		return
	}

	middleware.SetSessionCookie(c, h.config, s.ID())
	h.audit.Dispatch(audit.Event{
		UserEmail: email,
		Action:    "login",
		Entity:    "session",
		EntityID:  s.ID(),
	})

	c.JSON(http.StatusOK, gin.H{
		"user":         s.User(),
		"access_token": s.Token(),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s := middleware.SessionFrom(c)
	email := userEmail(c)

	if err := h.holder.Logout(c.Request.Context(), s); err != nil {
		httperr.Internal(c, "logout_failed", "Erro ao encerrar a sessão.")
		return
	}
	middleware.ClearSessionCookie(c, h.config)

	h.audit.Dispatch(audit.Event{UserEmail: email, Action: "logout", Entity: "session"})
	c.Status(http.StatusNoContent)
}
