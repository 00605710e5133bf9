package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	domain "github.com/BruksfildServices01/salon-console/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/salon-console/internal/infra/repository"
	"github.com/BruksfildServices01/salon-console/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-console/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	api   *apiclient.Client
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewAppointmentHandler(api *apiclient.Client, d *audit.Dispatcher, loc *time.Location) *AppointmentHandler {
	return &AppointmentHandler{api: api, audit: d, loc: loc}
}

func (h *AppointmentHandler) repo(c *gin.Context) domain.Repository {
	return infraRepo.NewAppointmentAPIRepository(apiFor(c, h.api))
}

// ======================================================
// CRUD
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := apiFor(c, h.api).Appointments.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := apiFor(c, h.api).Appointments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_get_appointment", "Erro ao carregar agendamento.")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	created, err := apiFor(c, h.api).Appointments.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Erro ao agendar.")
		return
	}

	writeAudit(h.audit, c, "appointment_created", "appointment", created.ID.String(), gin.H{
		"servico":   in.Service,
		"data_hora": in.DateTime,
	})
	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	id := c.Param("id")
	updated, err := apiFor(c, h.api).Appointments.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err, "failed_to_update_appointment", "Erro ao agendar.")
		return
	}

	writeAudit(h.audit, c, "appointment_updated", "appointment", id, gin.H{"status": in.Status})
	httpresp.OK(c, updated)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := apiFor(c, h.api).Appointments.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	writeAudit(h.audit, c, "appointment_deleted", "appointment", id, nil)
	httpresp.NoContent(c)
}

func (h *AppointmentHandler) bind(c *gin.Context) (models.AppointmentInput, bool) {
	var in models.AppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidRequest(c)
		return in, false
	}

	start, err := parseDateTimeInConsole(h.loc, in.DateTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return in, false
	}
	in.DateTime = start.UTC().Format(time.RFC3339)

	status, err := domain.ParseStatus(string(in.Status))
	if err != nil {
		writeError(c, err, "invalid_status", "Status inválido.")
		return in, false
	}
	in.Status = status

	return in, true
}

// ======================================================
// AGENDA (DIA / MÊS)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDateInConsole(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := ucAppointment.NewListAppointmentsByDate(h.repo(c), h.loc).
		Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := ucAppointment.NewListAppointmentsByMonth(h.repo(c), h.loc).
		Execute(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := ucAppointment.NewCancelAppointment(h.repo(c), h.audit).
		Execute(c.Request.Context(), userEmail(c), c.Param("id"))
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := ucAppointment.NewCompleteAppointment(h.repo(c), h.audit).
		Execute(c.Request.Context(), userEmail(c), c.Param("id"))
	if err != nil {
		h.writeTransitionError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) writeTransitionError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "appointment_not_found") {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}
	writeError(c, err, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
}
