package appointment

import (
	"strings"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// ===============================
// Appointment Status
// ===============================

// As transições de status são decididas pelo backend. O console só
// garante que o valor enviado é um dos conhecidos.
var statuses = []models.AppointmentStatus{
	models.AppointmentPending,
	models.AppointmentConfirmed,
	models.AppointmentCanceled,
	models.AppointmentCompleted,
}

func Statuses() []models.AppointmentStatus {
	out := make([]models.AppointmentStatus, len(statuses))
	copy(out, statuses)
	return out
}

// ParseStatus normaliza o status do formulário. Vazio vira PENDENTE.
func ParseStatus(raw string) (models.AppointmentStatus, error) {
	s := models.AppointmentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "" {
		return InitialStatus(), nil
	}
	for _, known := range statuses {
		if s == known {
			return s, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() models.AppointmentStatus {
	return models.AppointmentPending
}
