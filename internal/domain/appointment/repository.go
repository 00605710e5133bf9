package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Lookups --------
	ListClients(ctx context.Context) ([]models.Client, error)
	ListStaff(ctx context.Context) ([]models.Professional, error)
}
