package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/domain/finance"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/httpresp"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type FinanceHandler struct {
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewFinanceHandler(api *apiclient.Client, d *audit.Dispatcher) *FinanceHandler {
	return &FinanceHandler{api: api, audit: d}
}

// List aceita ?status=PAGO|PENDENTE|CANCELADO para filtrar.
func (h *FinanceHandler) List(c *gin.Context) {
	var want models.FinanceStatus
	if raw := c.Query("status"); raw != "" {
		s, err := finance.ParseStatus(raw)
		if err != nil {
			writeError(c, err, "invalid_status", "Status inválido.")
			return
		}
		want = s
	}

	entries, err := apiFor(c, h.api).Finance.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_finance", "Erro ao carregar dados financeiros")
		return
	}

	if want != "" {
		filtered := make([]models.FinanceEntry, 0, len(entries))
		for _, e := range entries {
			if e.Status == want {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	httpresp.List(c, entries)
}

func (h *FinanceHandler) Create(c *gin.Context) {
	in, ok := bindFinance(c)
	if !ok {
		return
	}

	created, err := apiFor(c, h.api).Finance.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_save_finance", "Erro ao salvar movimentação")
		return
	}

	writeAudit(h.audit, c, "finance_created", "finance", created.ID.String(), gin.H{
		"preco":  in.Price,
		"status": in.Status,
	})
	httpresp.Created(c, created)
}

func (h *FinanceHandler) Update(c *gin.Context) {
	in, ok := bindFinance(c)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := apiFor(c, h.api).Finance.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err, "failed_to_save_finance", "Erro ao salvar movimentação")
		return
	}

	writeAudit(h.audit, c, "finance_updated", "finance", id, gin.H{"status": in.Status})
	httpresp.OK(c, updated)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := apiFor(c, h.api).Finance.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_finance", "Erro ao excluir movimentação")
		return
	}

	writeAudit(h.audit, c, "finance_deleted", "finance", id, nil)
	httpresp.NoContent(c)
}

// Report repassa o relatório do backend sem reinterpretar.
func (h *FinanceHandler) Report(c *gin.Context) {
	raw, err := apiFor(c, h.api).Finance.Report(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_load_report", "Erro ao carregar relatório financeiro.")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// Reconcile dispara a conciliação de pagamentos no backend.
func (h *FinanceHandler) Reconcile(c *gin.Context) {
	raw, err := apiFor(c, h.api).Reconciliation.Reconcile(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_reconcile", "Erro ao conciliar pagamentos.")
		return
	}

	writeAudit(h.audit, c, "reconciliation_run", "payment", "", nil)
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func bindFinance(c *gin.Context) (models.FinanceInput, bool) {
	var in models.FinanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidRequest(c)
		return in, false
	}

	in.Description = strings.TrimSpace(in.Description)
	if err := validators.Required(in.Description, in.PaymentMethod); err != nil {
		writeError(c, err, "invalid_request", validators.MissingFieldsMessage)
		return in, false
	}
	if in.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Valor inválido.")
		return in, false
	}

	status, err := finance.ParseStatus(string(in.Status))
	if err != nil {
		writeError(c, err, "invalid_status", "Status inválido.")
		return in, false
	}
	in.Status = status

	return in, true
}
