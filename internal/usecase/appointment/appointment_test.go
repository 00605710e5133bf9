package appointment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type fakeRepo struct {
	appointments []models.Appointment
	clients      []models.Client
	staff        []models.Professional
	updated      []models.Appointment
}

func (f *fakeRepo) ListAppointments(context.Context) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID.String() == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("unexpected_lookup")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = append(f.updated, *ap)
	return nil
}

func (f *fakeRepo) ListClients(context.Context) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeRepo) ListStaff(context.Context) ([]models.Professional, error) {
	return f.staff, nil
}

type memSink struct{ events chan audit.Event }

func (s memSink) Log(_ context.Context, ev audit.Event) error {
	s.events <- ev
	return nil
}

func at(t *testing.T, s string) models.Timestamp {
	t.Helper()
	ts, err := models.ParseTimestamp(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func TestListByDateUsesLocalDay(t *testing.T) {
	loc := saoPaulo(t)
	repo := &fakeRepo{
		appointments: []models.Appointment{
			// 01:30 UTC do dia 17 ainda é dia 16 em São Paulo
			{ID: "2", DateTime: at(t, "2026-10-17T01:30:00Z"), ClientID: "7", ProfessionalID: "3", Service: "Escova"},
			{ID: "1", DateTime: at(t, "2026-10-16T12:00:00Z"), ClientID: "7", ProfessionalID: "3", Service: "Corte"},
			{ID: "3", DateTime: at(t, "2026-10-17T12:00:00Z"), ClientID: "7", Service: "Barba"},
		},
		clients: []models.Client{{ID: "7", Name: "Ana"}},
		staff:   []models.Professional{{ID: "3", Name: "Bia"}},
	}

	day := time.Date(2026, 10, 16, 0, 0, 0, 0, loc)
	got, err := NewListAppointmentsByDate(repo, loc).Execute(context.Background(), day)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if got[0].Time != "09:00" || got[1].Time != "22:30" || got[0].Date != "16/10/2026" {
		t.Fatalf("unexpected local formatting: %+v", got)
	}
	if got[0].ClientName != "Ana" || got[0].ProfessionalName != "Bia" {
		t.Fatalf("names not resolved: %+v", got[0])
	}
}

func TestListByMonth(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: "1", DateTime: at(t, "2026-10-31T12:00:00Z")},
			{ID: "2", DateTime: at(t, "2026-11-01T12:00:00Z")},
			{ID: "3"},
		},
	}

	got, err := NewListAppointmentsByMonth(repo, time.UTC).Execute(context.Background(), 2026, 10)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestCancelUpdatesAndAudits(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{{ID: "5", Status: models.AppointmentConfirmed}},
	}
	sink := memSink{events: make(chan audit.Event, 1)}
	d := audit.NewDispatcher(sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer d.Close()

	ap, err := NewCancelAppointment(repo, d).Execute(context.Background(), "ana@salao.com", "5")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ap.Status != models.AppointmentCanceled {
		t.Fatalf("expected CANCELADO, got %s", ap.Status)
	}
	if len(repo.updated) != 1 || repo.updated[0].Status != models.AppointmentCanceled {
		t.Fatalf("backend not updated: %+v", repo.updated)
	}

	select {
	case ev := <-sink.events:
		if ev.Action != "appointment_cancelled" || ev.EntityID != "5" || ev.UserEmail != "ana@salao.com" {
			t.Fatalf("unexpected audit event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("audit event not written")
	}
}

func TestCompleteLeavesTransitionToBackend(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{{ID: "5", Status: models.AppointmentCanceled}},
	}

	ap, err := NewCompleteAppointment(repo, nil).Execute(context.Background(), "", "5")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.Status != models.AppointmentCompleted {
		t.Fatalf("expected CONCLUIDO, got %s", ap.Status)
	}
	if len(repo.updated) != 1 || repo.updated[0].Status != models.AppointmentCompleted {
		t.Fatalf("backend not asked: %+v", repo.updated)
	}
}
