package dashboard

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/domain/finance"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

const (
	topServicesLimit = 5
	upcomingLimit    = 5
)

type Inputs struct {
	Appointments  []models.Appointment
	Clients       []models.Client
	Finance       []models.FinanceEntry
	Professionals []models.Professional
}

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Upcoming struct {
	ID       models.ID                `json:"id"`
	ClientID models.ID                `json:"clienteId"`
	Service  string                   `json:"servico"`
	Date     string                   `json:"data"`
	Time     string                   `json:"hora"`
	Value    float64                  `json:"valor"`
	Status   models.AppointmentStatus `json:"status"`
	At       time.Time                `json:"data_hora"`
}

type TeamMember struct {
	Name     string   `json:"nome"`
	Role     string   `json:"cargo"`
	Services []string `json:"servicos"`
}

type Team struct {
	Professionals       []TeamMember `json:"profissionais"`
	UniqueServices      []string     `json:"servicosUnicos"`
	UniqueRoles         []string     `json:"cargosUnicos"`
	ActiveProfessionals int          `json:"activeProfessionals"`
}

type Financial struct {
	DailyRevenue    float64 `json:"dailyRevenue"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	PendingPayments int     `json:"pendingPayments"`
}

type Data struct {
	TodayAppointments int            `json:"todayAppointments"`
	DailyRevenue      float64        `json:"dailyRevenue"`
	MonthlyRevenue    float64        `json:"monthlyRevenue"`
	MonthlyClients    int            `json:"monthlyClients"`
	TopServices       []ServiceCount `json:"topServices"`
	NextAppointments  []Upcoming     `json:"nextAppointments"`
	PendingPayments   int            `json:"pendingPayments"`
	TotalClients      int            `json:"totalClients"`
	Financial         Financial      `json:"financial"`
	Team              Team           `json:"team"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}

// Build calcula todos os indicadores. now define "hoje" e o mês corrente
// no fuso em que foi criado.
func Build(in Inputs, now time.Time) Data {
	daily := DailyRevenue(in.Finance, now)
	monthly := MonthlyRevenue(in.Finance, now)
	pending := PendingPayments(in.Finance)

	return Data{
		TodayAppointments: TodayAppointments(in.Appointments, now),
		DailyRevenue:      daily,
		MonthlyRevenue:    monthly,
		MonthlyClients:    MonthlyClients(in.Clients, now),
		TopServices:       TopServices(in.Appointments),
		NextAppointments:  UpcomingAppointments(in.Appointments, now),
		PendingPayments:   pending,
		TotalClients:      len(in.Clients),
		Financial: Financial{
			DailyRevenue:    daily,
			MonthlyRevenue:  monthly,
			PendingPayments: pending,
		},
		Team:        StaffRollup(in.Professionals),
		GeneratedAt: now,
	}
}

func TodayAppointments(aps []models.Appointment, now time.Time) int {
	n := 0
	for _, ap := range aps {
		if timezone.SameDay(ap.DateTime.Time, now) {
			n++
		}
	}
	return n
}

// Soma simples em float64, sem arredondamento.
func DailyRevenue(entries []models.FinanceEntry, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		if finance.Counts(e) && timezone.SameDay(e.CreatedAt.Time, now) {
			total += e.Price
		}
	}
	return total
}

func MonthlyRevenue(entries []models.FinanceEntry, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		if finance.Counts(e) && timezone.SameMonth(e.CreatedAt.Time, now) {
			total += e.Price
		}
	}
	return total
}

// MonthlyClients conta pelo mês de nascimento, não pelo cadastro: o
// backend não expõe data de cadastro.
// TODO: trocar por data de cadastro quando /clientes passar a devolvê-la.
func MonthlyClients(clients []models.Client, now time.Time) int {
	n := 0
	for _, c := range clients {
		if c.BirthDate.IsZero() {
			continue
		}
		// data sem hora: vale o mês como veio, sem conversão de fuso
		if c.BirthDate.Month() == now.Month() {
			n++
		}
	}
	return n
}

// TopServices ordena por contagem decrescente; empates mantêm a ordem
// em que o serviço apareceu pela primeira vez.
func TopServices(aps []models.Appointment) []ServiceCount {
	index := make(map[string]int)
	counts := make([]ServiceCount, 0)
	for _, ap := range aps {
		i, ok := index[ap.Service]
		if !ok {
			i = len(counts)
			index[ap.Service] = i
			counts = append(counts, ServiceCount{Name: ap.Service})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > topServicesLimit {
		counts = counts[:topServicesLimit]
	}
	return counts
}

func UpcomingAppointments(aps []models.Appointment, now time.Time) []Upcoming {
	next := make([]models.Appointment, 0)
	for _, ap := range aps {
		if ap.DateTime.IsZero() {
			continue
		}
		if !ap.DateTime.Before(now) {
			next = append(next, ap)
		}
	}

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].DateTime.Before(next[j].DateTime.Time)
	})
	if len(next) > upcomingLimit {
		next = next[:upcomingLimit]
	}

	out := make([]Upcoming, 0, len(next))
	for _, ap := range next {
		local := ap.DateTime.In(now.Location())
		var value float64
		if ap.ServicePrice != nil {
			value = *ap.ServicePrice
		}
		out = append(out, Upcoming{
			ID:       ap.ID,
			ClientID: ap.ClientID,
			Service:  ap.Service,
			Date:     local.Format("02/01/2006"),
			Time:     local.Format("15:04"),
			Value:    value,
			Status:   ap.Status,
			At:       local,
		})
	}
	return out
}

func PendingPayments(entries []models.FinanceEntry) int {
	n := 0
	for _, e := range entries {
		if e.Status == models.FinancePending {
			n++
		}
	}
	return n
}

func StaffRollup(pros []models.Professional) Team {
	team := Team{
		Professionals:  make([]TeamMember, 0),
		UniqueServices: make([]string, 0),
		UniqueRoles:    make([]string, 0),
	}
	seenService := make(map[string]bool)
	seenRole := make(map[string]bool)

	for _, p := range pros {
		if !p.Perfil.IsStaff() {
			continue
		}
		services := p.Services
		if services == nil {
			services = []string{}
		}
		team.Professionals = append(team.Professionals, TeamMember{
			Name:     p.Name,
			Role:     p.Role,
			Services: services,
		})
		for _, s := range services {
			if !seenService[s] {
				seenService[s] = true
				team.UniqueServices = append(team.UniqueServices, s)
			}
		}
		if !seenRole[p.Role] {
			seenRole[p.Role] = true
			team.UniqueRoles = append(team.UniqueRoles, p.Role)
		}
	}
	team.ActiveProfessionals = len(team.Professionals)
	return team
}
