package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/audit"
	domain "github.com/BruksfildServices01/salon-console/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userEmail string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if apiclient.IsNotFound(err) {
		return nil, httperr.ErrBusinessMsg("appointment_not_found", "Agendamento não encontrado.")
	}
	if err != nil {
		return nil, err
	}

	domain.Cancel(ap)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserEmail: userEmail,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  appointmentID,
	})

	return ap, nil
}
