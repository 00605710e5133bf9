package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	domain "github.com/BruksfildServices01/salon-console/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// AppointmentAPIRepository serve o domínio de agendamentos a partir do
// backend, com a sessão de quem fez a requisição.
type AppointmentAPIRepository struct {
	api *apiclient.API
}

var _ domain.Repository = (*AppointmentAPIRepository)(nil)

func NewAppointmentAPIRepository(api *apiclient.API) *AppointmentAPIRepository {
	return &AppointmentAPIRepository{api: api}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentAPIRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return r.api.Appointments.List(ctx)
}

func (r *AppointmentAPIRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {
	return r.api.Appointments.Get(ctx, id)
}

// UpdateAppointment regrava o agendamento inteiro (PUT), como o backend exige.
func (r *AppointmentAPIRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	in := models.AppointmentInput{
		ClientID:       ap.ClientID,
		ProfessionalID: ap.ProfessionalID,
		Service:        ap.Service,
		DateTime:       ap.DateTime.UTC().Format(time.RFC3339),
		Status:         ap.Status,
		Notes:          ap.Notes,
	}

	updated, err := r.api.Appointments.Update(ctx, ap.ID.String(), in)
	if err != nil {
		return err
	}
	if updated != nil && updated.ID != "" {
		*ap = *updated
	}
	return nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentAPIRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	return r.api.Clients.List(ctx)
}

func (r *AppointmentAPIRepository) ListStaff(ctx context.Context) ([]models.Professional, error) {
	return r.api.Professionals.List(ctx)
}
