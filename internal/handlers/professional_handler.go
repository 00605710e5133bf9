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

type ProfessionalHandler struct {
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewProfessionalHandler(api *apiclient.Client, d *audit.Dispatcher) *ProfessionalHandler {
	return &ProfessionalHandler{api: api, audit: d}
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	pros, err := apiFor(c, h.api).Professionals.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_professionals", "Erro ao carregar profissionais.")
		return
	}
	httpresp.List(c, pros)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	p, err := apiFor(c, h.api).Professionals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_get_professional", "Erro ao carregar profissional.")
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	in, ok := bindProfessional(c, true)
	if !ok {
		return
	}

	created, err := apiFor(c, h.api).Professionals.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_create_professional", "Erro ao salvar os dados!")
		return
	}

	writeAudit(h.audit, c, "professional_created", "professional", created.ID.String(), gin.H{"email": in.Email})
	httpresp.Created(c, created)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	in, ok := bindProfessional(c, false)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := apiFor(c, h.api).Professionals.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err, "failed_to_update_professional", "Erro ao salvar os dados!")
		return
	}

	writeAudit(h.audit, c, "professional_updated", "professional", id, nil)
	httpresp.OK(c, updated)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := apiFor(c, h.api).Professionals.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_professional", "Erro ao excluir profissional!")
		return
	}

	writeAudit(h.audit, c, "professional_deleted", "professional", id, nil)
	httpresp.NoContent(c)
}

// serviços chegam como multi-select: tira vazios e repetidos
func normalizeServices(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func bindProfessional(c *gin.Context, creating bool) (models.ProfessionalInput, bool) {
	var in models.ProfessionalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidRequest(c)
		return in, false
	}

	required := []string{in.Name, in.Email, in.Role}
	if creating {
		required = append(required, in.Password)
	}
	if err := validators.Required(required...); err != nil {
		writeError(c, err, "invalid_request", validators.MissingFieldsMessage)
		return in, false
	}

	in.Email = validators.NormalizeEmail(in.Email)
	if !validators.IsEmailValid(in.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return in, false
	}

	in.Services = normalizeServices(in.Services)
	return in, true
}
