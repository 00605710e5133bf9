package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type recorded struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []recorded
	handler  func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recorded{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization")}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.mu.Unlock()

	if f.handler != nil {
		f.handler(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{}`))
}

func (f *fakeBackend) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("no request recorded")
	}
	return f.requests[len(f.requests)-1]
}

func newTestAPI(t *testing.T, fb *fakeBackend, ts TokenSource) *API {
	t.Helper()
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", WithHTTPClient(srv.Client())).For(ts)
}

func TestBearerHeaderAttached(t *testing.T) {
	fb := &fakeBackend{handler: func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}}
	api := newTestAPI(t, fb, staticToken("abc.def.ghi"))

	if _, err := api.Clients.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := fb.last(t).auth; got != "Bearer abc.def.ghi" {
		t.Fatalf("unexpected auth header %q", got)
	}
}

func TestAnonymousCallHasNoAuthorization(t *testing.T) {
	fb := &fakeBackend{handler: func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"x.y.z"}`))
	}}
	api := newTestAPI(t, fb, nil)

	resp, err := api.Users.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken != "x.y.z" {
		t.Fatalf("unexpected token %q", resp.AccessToken)
	}
	last := fb.last(t)
	if last.auth != "" {
		t.Fatalf("anonymous call must not send Authorization, got %q", last.auth)
	}
	if last.method != http.MethodPost || last.path != "/usuarios/login" || last.body["senha"] != "123" {
		t.Fatalf("unexpected login request %+v", last)
	}
}

func TestResourceRoutes(t *testing.T) {
	fb := &fakeBackend{}
	api := newTestAPI(t, fb, staticToken("t"))
	ctx := context.Background()

	cases := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"client get", func() error { _, err := api.Clients.Get(ctx, "7"); return err }, http.MethodGet, "/clientes/7"},
		{"client update", func() error { _, err := api.Clients.Update(ctx, "7", models.ClientInput{Name: "Ana"}); return err }, http.MethodPatch, "/clientes/7"},
		{"client delete", func() error { return api.Clients.Delete(ctx, "7") }, http.MethodDelete, "/clientes/7"},
		{"appointment create", func() error { _, err := api.Appointments.Create(ctx, models.AppointmentInput{Service: "Corte"}); return err }, http.MethodPost, "/agendamento"},
		{"appointment update", func() error { _, err := api.Appointments.Update(ctx, "3", models.AppointmentInput{}); return err }, http.MethodPut, "/agendamento/3"},
		{"appointment delete", func() error { return api.Appointments.Delete(ctx, "3") }, http.MethodDelete, "/agendamento/3"},
		{"finance update", func() error { _, err := api.Finance.Update(ctx, "9", models.FinanceInput{}); return err }, http.MethodPatch, "/financeiro/9"},
		{"finance delete", func() error { return api.Finance.Delete(ctx, "9") }, http.MethodDelete, "/financeiro/9"},
		{"finance report", func() error { _, err := api.Finance.Report(ctx); return err }, http.MethodGet, "/financeiro/relatorio"},
		{"payment create", func() error { _, err := api.Payments.Create(ctx, models.PaymentInput{}); return err }, http.MethodPost, "/pagamentos"},
		{"payment update", func() error { _, err := api.Payments.Update(ctx, "1", models.PaymentInput{}); return err }, http.MethodPatch, "/pagamentos/1"},
		{"professional delete", func() error { return api.Professionals.Delete(ctx, "4") }, http.MethodDelete, "/usuarios/4"},
		{"reconcile", func() error { _, err := api.Reconciliation.Reconcile(ctx); return err }, http.MethodGet, "/conciliacao/conciliar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); err != nil {
				t.Fatalf("call: %v", err)
			}
			last := fb.last(t)
			if last.method != tc.method || last.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.method, tc.path, last.method, last.path)
			}
			if last.auth != "Bearer t" {
				t.Fatalf("missing bearer on %s", tc.name)
			}
		})
	}
}

func TestProfessionalsFilterAndForcePerfil(t *testing.T) {
	fb := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[
				{"id_profissional": 1, "nome": "Ana", "perfil": "admin"},
				{"id_profissional": 2, "nome": "Bia", "perfil": "profissional", "servicos": ["Corte"]}
			]`))
			return
		}
		_, _ = w.Write([]byte(`{"id_profissional": 3}`))
	}}
	api := newTestAPI(t, fb, staticToken("t"))

	list, err := api.Professionals.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Bia" || list[0].ID != "2" {
		t.Fatalf("unexpected professionals: %+v", list)
	}

	created, err := api.Professionals.Create(context.Background(), models.ProfessionalInput{
		Name:     "Carla",
		Password: "segredo",
		Perfil:   models.PerfilAdmin,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "3" {
		t.Fatalf("unexpected created id %q", created.ID)
	}
	last := fb.last(t)
	if last.path != "/usuarios" || last.body["perfil"] != "profissional" || last.body["senha"] != "segredo" {
		t.Fatalf("unexpected create body: %+v", last)
	}
}

func TestErrorResponse(t *testing.T) {
	fb := &fakeBackend{handler: func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": ["cpf inválido"], "error": "Bad Request"}`))
	}}
	api := newTestAPI(t, fb, staticToken("t"))

	_, err := api.Clients.Create(context.Background(), models.ClientInput{Name: "Ana"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "cpf inválido" || apiErr.Code != "Bad Request" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if StatusOf(err) != http.StatusBadRequest || IsNotFound(err) {
		t.Fatal("status helpers disagree")
	}
}

func TestUnauthorizedHelper(t *testing.T) {
	fb := &fakeBackend{handler: func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}}
	api := newTestAPI(t, fb, staticToken("expired"))

	_, err := api.Finance.List(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	fb := &fakeBackend{}
	api := newTestAPI(t, fb, staticToken("t"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := api.Payments.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
