package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/validators"
)

// ======================================================
// ERROS DO BACKEND
// ======================================================

// writeError traduz a falha para a resposta da view. message é o texto
// mostrado ao usuário quando o backend não manda um melhor.
func writeError(c *gin.Context, err error, code, message string) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = message
		}
		httperr.BadRequest(c, be.Code, msg)
		return
	}

	if errors.Is(err, context.Canceled) {
		// cliente desistiu; não há para quem responder
		c.Abort()
		return
	}

	slog.Default().Error(code,
		"request_id", c.GetString(middleware.ContextRequestID),
		"path", c.FullPath(),
		"err", err,
	)

	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		httperr.BadGateway(c, code, message)
		return
	}

	switch {
	case apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden:
		httperr.Unauthorized(c, "upstream_unauthorized", "Sessão expirada. Faça login novamente.")
	case apiErr.Status == http.StatusNotFound:
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
	case apiErr.Status >= 400 && apiErr.Status < 500:
		msg := apiErr.Message
		if msg == "" {
			msg = message
		}
		httperr.BadRequest(c, code, msg)
	default:
		httperr.BadGateway(c, code, message)
	}
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", validators.MissingFieldsMessage)
}

// ======================================================
// SESSÃO / AUDITORIA
// ======================================================

func apiFor(c *gin.Context, client *apiclient.Client) *apiclient.API {
	return client.For(middleware.SessionFrom(c))
}

func userEmail(c *gin.Context) string {
	if s := middleware.SessionFrom(c); s != nil {
		if u := s.User(); u != nil {
			return u.Email
		}
	}
	return ""
}

func writeAudit(d *audit.Dispatcher, c *gin.Context, action, entity, entityID string, meta any) {
	d.Dispatch(audit.Event{
		UserEmail: userEmail(c),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  meta,
	})
}
