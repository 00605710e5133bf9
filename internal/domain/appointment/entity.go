package appointment

import (
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel e Complete só trocam o status. Se a transição é permitida quem
// decide é o backend.
func Cancel(ap *models.Appointment) {
	ap.Status = models.AppointmentCanceled
}

func Complete(ap *models.Appointment) {
	ap.Status = models.AppointmentCompleted
}
