package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

const (
	pathClients        = "/clientes"
	pathUsers          = "/usuarios"
	pathLogin          = "/usuarios/login"
	pathAppointments   = "/agendamento"
	pathFinance        = "/financeiro"
	pathFinanceReport  = "/financeiro/relatorio"
	pathPayments       = "/pagamentos"
	pathReconciliation = "/conciliacao/conciliar"
)

// ======================================================
// CLIENTES
// ======================================================

type ClientService struct{ api *API }

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	err := s.api.do(ctx, http.MethodGet, pathClients, nil, &out)
	return out, err
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	var out models.Client
	if err := s.api.do(ctx, http.MethodGet, resourcePath(pathClients, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) Create(ctx context.Context, in models.ClientInput) (*models.Client, error) {
	var out models.Client
	if err := s.api.do(ctx, http.MethodPost, pathClients, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) Update(ctx context.Context, id string, in models.ClientInput) (*models.Client, error) {
	var out models.Client
	if err := s.api.do(ctx, http.MethodPatch, resourcePath(pathClients, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, resourcePath(pathClients, id), nil, nil)
}

// ======================================================
// PROFISSIONAIS (usuários com perfil profissional)
// ======================================================

type ProfessionalService struct{ api *API }

func (s *ProfessionalService) List(ctx context.Context) ([]models.Professional, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Professional, 0, len(all))
	for _, p := range all {
		if p.Perfil.IsStaff() {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListAll devolve todos os usuários, inclusive administradores.
func (s *ProfessionalService) ListAll(ctx context.Context) ([]models.Professional, error) {
	var out []models.Professional
	err := s.api.do(ctx, http.MethodGet, pathUsers, nil, &out)
	return out, err
}

func (s *ProfessionalService) Get(ctx context.Context, id string) (*models.Professional, error) {
	var out models.Professional
	if err := s.api.do(ctx, http.MethodGet, resourcePath(pathUsers, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProfessionalService) Create(ctx context.Context, in models.ProfessionalInput) (*models.Professional, error) {
	in.Perfil = models.PerfilProfissional
	var out models.Professional
	if err := s.api.do(ctx, http.MethodPost, pathUsers, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProfessionalService) Update(ctx context.Context, id string, in models.ProfessionalInput) (*models.Professional, error) {
	in.Perfil = models.PerfilProfissional
	var out models.Professional
	if err := s.api.do(ctx, http.MethodPatch, resourcePath(pathUsers, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProfessionalService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, resourcePath(pathUsers, id), nil, nil)
}

// ======================================================
// AGENDAMENTOS
// ======================================================

type AppointmentService struct{ api *API }

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	err := s.api.do(ctx, http.MethodGet, pathAppointments, nil, &out)
	return out, err
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var out models.Appointment
	if err := s.api.do(ctx, http.MethodGet, resourcePath(pathAppointments, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AppointmentService) Create(ctx context.Context, in models.AppointmentInput) (*models.Appointment, error) {
	var out models.Appointment
	if err := s.api.do(ctx, http.MethodPost, pathAppointments, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AppointmentService) Update(ctx context.Context, id string, in models.AppointmentInput) (*models.Appointment, error) {
	var out models.Appointment
	if err := s.api.do(ctx, http.MethodPut, resourcePath(pathAppointments, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, resourcePath(pathAppointments, id), nil, nil)
}

// ======================================================
// FINANCEIRO
// ======================================================

type FinanceService struct{ api *API }

func (s *FinanceService) List(ctx context.Context) ([]models.FinanceEntry, error) {
	var out []models.FinanceEntry
	err := s.api.do(ctx, http.MethodGet, pathFinance, nil, &out)
	return out, err
}

func (s *FinanceService) Create(ctx context.Context, in models.FinanceInput) (*models.FinanceEntry, error) {
	var out models.FinanceEntry
	if err := s.api.do(ctx, http.MethodPost, pathFinance, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceService) Update(ctx context.Context, id string, in models.FinanceInput) (*models.FinanceEntry, error) {
	var out models.FinanceEntry
	if err := s.api.do(ctx, http.MethodPatch, resourcePath(pathFinance, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, resourcePath(pathFinance, id), nil, nil)
}

// Report repassa o relatório do backend sem interpretá-lo.
func (s *FinanceService) Report(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.do(ctx, http.MethodGet, pathFinanceReport, nil, &out)
	return out, err
}

// ======================================================
// PAGAMENTOS
// ======================================================

type PaymentService struct{ api *API }

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	err := s.api.do(ctx, http.MethodGet, pathPayments, nil, &out)
	return out, err
}

func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.do(ctx, http.MethodGet, resourcePath(pathPayments, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PaymentService) Create(ctx context.Context, in models.PaymentInput) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.do(ctx, http.MethodPost, pathPayments, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PaymentService) Update(ctx context.Context, id string, in models.PaymentInput) (*models.Payment, error) {
	var out models.Payment
	if err := s.api.do(ctx, http.MethodPatch, resourcePath(pathPayments, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, resourcePath(pathPayments, id), nil, nil)
}

// ======================================================
// USUÁRIOS
// ======================================================

type UserService struct{ api *API }

func (s *UserService) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := s.api.do(ctx, http.MethodPost, pathLogin, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := s.api.do(ctx, http.MethodGet, pathUsers, nil, &out)
	return out, err
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := s.api.do(ctx, http.MethodGet, resourcePath(pathUsers, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	var out models.User
	if err := s.api.do(ctx, http.MethodPost, pathUsers, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) Update(ctx context.Context, id string, in models.UserInput) (*models.User, error) {
	var out models.User
	if err := s.api.do(ctx, http.MethodPatch, resourcePath(pathUsers, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.api.do(ctx, http.MethodDelete, resourcePath(pathUsers, id), nil, nil)
}

// ======================================================
// CONCILIAÇÃO
// ======================================================

type ReconciliationService struct{ api *API }

func (s *ReconciliationService) Reconcile(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := s.api.do(ctx, http.MethodGet, pathReconciliation, nil, &out)
	return out, err
}
