package appointment

import (
	"testing"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

func TestCancelAndComplete(t *testing.T) {
	ap := &models.Appointment{Status: models.AppointmentConfirmed}
	Cancel(ap)
	if ap.Status != models.AppointmentCanceled {
		t.Fatalf("expected CANCELADO, got %s", ap.Status)
	}

	ap = &models.Appointment{Status: models.AppointmentPending}
	Complete(ap)
	if ap.Status != models.AppointmentCompleted {
		t.Fatalf("expected CONCLUIDO, got %s", ap.Status)
	}
}

func TestFinishedAppointmentsAreNotGated(t *testing.T) {
	ap := &models.Appointment{Status: models.AppointmentCanceled}
	Complete(ap)
	if ap.Status != models.AppointmentCompleted {
		t.Fatalf("expected CONCLUIDO, got %s", ap.Status)
	}

	ap = &models.Appointment{Status: models.AppointmentCompleted}
	Cancel(ap)
	if ap.Status != models.AppointmentCanceled {
		t.Fatalf("expected CANCELADO, got %s", ap.Status)
	}
}
