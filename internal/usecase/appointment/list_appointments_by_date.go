package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-console/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-console/internal/dto"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := timezone.StartOfDay(date.In(uc.loc))
	end := start.AddDate(0, 0, 1)

	return listForPeriod(ctx, uc.repo, start, end)
}
