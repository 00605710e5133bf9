package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/salon-console/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-console/internal/dto"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// listForPeriod devolve os agendamentos em [start, end), em ordem de
// horário, já com os nomes de cliente e profissional resolvidos.
func listForPeriod(
	ctx context.Context,
	repo domain.Repository,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	staff, err := repo.ListStaff(ctx)
	if err != nil {
		return nil, err
	}

	clientNames := make(map[models.ID]string, len(clients))
	for _, cl := range clients {
		clientNames[cl.ID] = cl.Name
	}
	staffNames := make(map[models.ID]string, len(staff))
	for _, p := range staff {
		staffNames[p.ID] = p.Name
	}

	inPeriod := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.DateTime.IsZero() || ap.DateTime.Before(start) || !ap.DateTime.Before(end) {
			continue
		}
		inPeriod = append(inPeriod, ap)
	}
	sort.SliceStable(inPeriod, func(i, j int) bool {
		return inPeriod[i].DateTime.Before(inPeriod[j].DateTime.Time)
	})

	loc := start.Location()
	out := make([]dto.AppointmentListDTO, 0, len(inPeriod))
	for _, ap := range inPeriod {
		local := ap.DateTime.In(loc)

		clientName := clientNames[ap.ClientID]
		if clientName == "" && ap.Client != nil {
			clientName = ap.Client.Name
		}
		staffName := staffNames[ap.ProfessionalID]
		if staffName == "" && ap.Professional != nil {
			staffName = ap.Professional.Name
		}

		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID.String(),
			DateTime:         local,
			Date:             local.Format("02/01/2006"),
			Time:             local.Format("15:04"),
			Status:           string(ap.Status),
			Service:          ap.Service,
			ClientName:       clientName,
			ProfessionalName: staffName,
		})
	}

	return out, nil
}
