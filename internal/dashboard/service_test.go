package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
)

type token string

func (t token) Token() string { return string(t) }

func newBackend(t *testing.T, routes map[string]string, seen *sync.Map) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen.Store(r.URL.Path, r.Header.Get("Authorization"))
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestService(srv *httptest.Server, now time.Time) *Service {
	client := apiclient.New(srv.URL, apiclient.WithHTTPClient(srv.Client()))
	svc := NewService(client, brt, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return now }
	return svc
}

func TestLoadAggregatesAllSources(t *testing.T) {
	var seen sync.Map
	srv := newBackend(t, map[string]string{
		"/agendamento": `[
			{"id": 1, "servico": "Corte", "status": "PENDENTE", "data_hora": "2026-10-16T12:00:00Z"},
			{"id": 2, "servico": "Corte", "status": "CONCLUIDO", "data_hora": "2026-10-15T12:00:00Z"}
		]`,
		"/clientes": `[{"id_cliente": 1, "nome": "Ana", "dataNascimento": "1990-10-02"}]`,
		"/financeiro": `[
			{"id": 1, "preco": 50, "status": "PAGO", "data_criacao": "2026-10-16T11:00:00Z"},
			{"id": 2, "preco": 30, "status": "PENDENTE", "data_criacao": "2026-10-16T11:00:00Z"}
		]`,
		"/usuarios": `[
			{"id_profissional": 1, "nome": "Ana", "cargo": "Cabeleireira", "perfil": "profissional", "servicos": ["Corte"]},
			{"id_profissional": 2, "nome": "Dona", "cargo": "Gerente", "perfil": "admin"}
		]`,
	}, &seen)

	svc := newTestService(srv, fixedNow())
	data, err := svc.Load(context.Background(), token("tok"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if data.TodayAppointments != 1 {
		t.Fatalf("expected 1 today, got %d", data.TodayAppointments)
	}
	if len(data.TopServices) != 1 || data.TopServices[0].Count != 2 {
		t.Fatalf("unexpected top services: %+v", data.TopServices)
	}
	if data.DailyRevenue != 50 || data.PendingPayments != 1 {
		t.Fatalf("unexpected finance: %+v", data.Financial)
	}
	if data.MonthlyClients != 1 || data.TotalClients != 1 {
		t.Fatalf("unexpected clients: %d/%d", data.MonthlyClients, data.TotalClients)
	}
	if data.Team.ActiveProfessionals != 1 {
		t.Fatalf("admins must not count as staff: %+v", data.Team)
	}

	for _, path := range []string{"/agendamento", "/clientes", "/financeiro", "/usuarios"} {
		v, ok := seen.Load(path)
		if !ok {
			t.Fatalf("%s was not fetched", path)
		}
		if v.(string) != "Bearer tok" {
			t.Fatalf("%s sent %q", path, v)
		}
	}
}

func TestLoadFailsWhenAnySourceFails(t *testing.T) {
	srv := newBackend(t, map[string]string{
		"/agendamento": `[]`,
		"/clientes":    `[]`,
		"/usuarios":    `[]`,
	}, nil)

	svc := newTestService(srv, fixedNow())
	_, err := svc.Load(context.Background(), token("tok"))
	if !apiclient.IsNotFound(err) {
		t.Fatalf("expected the finance 404 to surface, got %v", err)
	}
}

func TestLoadFailsOnMalformedDate(t *testing.T) {
	srv := newBackend(t, map[string]string{
		"/agendamento": `[{"id": 1, "servico": "Corte", "data_hora": "amanhã"}]`,
		"/clientes":    `[]`,
		"/financeiro":  `[]`,
		"/usuarios":    `[]`,
	}, nil)

	svc := newTestService(srv, fixedNow())
	if _, err := svc.Load(context.Background(), token("tok")); err == nil {
		t.Fatal("expected decode error for malformed date")
	}
}

func TestLoadHonorsCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	svc := newTestService(srv, fixedNow())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := svc.Load(ctx, token("tok"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
