package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/httpresp"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type PaymentHandler struct {
	api   *apiclient.Client
	audit *audit.Dispatcher
}

func NewPaymentHandler(api *apiclient.Client, d *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{api: api, audit: d}
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := apiFor(c, h.api).Payments.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_payments", "Erro ao carregar pagamentos.")
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := apiFor(c, h.api).Payments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_get_payment", "Erro ao carregar pagamento.")
		return
	}
	httpresp.OK(c, p)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	in, ok := bindPayment(c)
	if !ok {
		return
	}

	created, err := apiFor(c, h.api).Payments.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_create_payment", "Erro ao registrar pagamento.")
		return
	}

	writeAudit(h.audit, c, "payment_created", "payment", created.ID.String(), gin.H{
		"agendamentoId": in.AppointmentID,
		"valor":         in.Amount,
	})
	httpresp.Created(c, created)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	in, ok := bindPayment(c)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := apiFor(c, h.api).Payments.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err, "failed_to_update_payment", "Erro ao registrar pagamento.")
		return
	}

	writeAudit(h.audit, c, "payment_updated", "payment", id, nil)
	httpresp.OK(c, updated)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := apiFor(c, h.api).Payments.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_payment", "Erro ao excluir pagamento.")
		return
	}

	writeAudit(h.audit, c, "payment_deleted", "payment", id, nil)
	httpresp.NoContent(c)
}

func bindPayment(c *gin.Context) (models.PaymentInput, bool) {
	var in models.PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidRequest(c)
		return in, false
	}

	if in.Amount < 0 || in.AmountPaid < 0 {
		httperr.BadRequest(c, "invalid_amount", "Valor inválido.")
		return in, false
	}

	if in.PaidAt != "" {
		ts, err := models.ParseTimestamp(in.PaidAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de pagamento inválida.")
			return in, false
		}
		in.PaidAt = ts.UTC().Format(time.RFC3339)
	}

	return in, true
}
