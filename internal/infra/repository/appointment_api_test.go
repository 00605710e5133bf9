package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestUpdateAppointmentKeepsIDShape(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/agendamento/a-1" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := apiclient.New(srv.URL, apiclient.WithHTTPClient(srv.Client())).For(staticToken("t"))
	repo := NewAppointmentAPIRepository(api)

	ap := &models.Appointment{
		ID:             "a-1",
		ClientID:       "cli-7",
		ProfessionalID: "3",
		Service:        "Corte",
		Status:         models.AppointmentCanceled,
	}
	if err := repo.UpdateAppointment(context.Background(), ap); err != nil {
		t.Fatalf("update: %v", err)
	}

	if body["id_cliente"] != "cli-7" {
		t.Fatalf("non-numeric id must go as string, got %#v", body["id_cliente"])
	}
	if body["id_profissional"] != float64(3) {
		t.Fatalf("numeric id must go as number, got %#v", body["id_profissional"])
	}
	if body["status"] != "CANCELADO" {
		t.Fatalf("unexpected status %#v", body["status"])
	}
}
