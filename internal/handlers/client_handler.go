package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/httpresp"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/validators"
)

type ClientHandler struct {
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewClientHandler(api *apiclient.Client, d *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{api: api, audit: d}
}

// ======================================================
// LIST (filtro opcional ?query= por nome, telefone ou cpf)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := apiFor(c, h.api).Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_clients", "Erro ao carregar clientes.")
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query != "" {
		filtered := make([]models.Client, 0, len(clients))
		for _, cl := range clients {
			if strings.Contains(strings.ToLower(cl.Name), query) ||
				strings.Contains(cl.Phone, query) ||
				strings.Contains(cl.CPF, query) {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := apiFor(c, h.api).Clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_get_client", "Erro ao carregar cliente.")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	in, ok := bindClient(c)
	if !ok {
		return
	}

	created, err := apiFor(c, h.api).Clients.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_create_client", "Erro ao salvar cliente.")
		return
	}

	writeAudit(h.audit, c, "client_created", "client", created.ID.String(), gin.H{"nome": in.Name})
	httpresp.Created(c, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	in, ok := bindClient(c)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := apiFor(c, h.api).Clients.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}

	writeAudit(h.audit, c, "client_updated", "client", id, nil)
	httpresp.OK(c, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := apiFor(c, h.api).Clients.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	writeAudit(h.audit, c, "client_deleted", "client", id, nil)
	httpresp.NoContent(c)
}

func bindClient(c *gin.Context) (models.ClientInput, bool) {
	var in models.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidRequest(c)
		return in, false
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := validators.Required(in.Name, in.Phone, in.CPF); err != nil {
		writeError(c, err, "invalid_request", validators.MissingFieldsMessage)
		return in, false
	}

	if in.Email != "" {
		in.Email = validators.NormalizeEmail(in.Email)
		if !validators.IsEmailValid(in.Email) {
			httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
			return in, false
		}
	}

	if in.BirthDate != "" {
		if _, err := models.ParseTimestamp(in.BirthDate); err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return in, false
		}
	}

	return in, true
}
