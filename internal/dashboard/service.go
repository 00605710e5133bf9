package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-console/internal/apiclient"
)

type Service struct {
	client *apiclient.Client
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

func NewService(client *apiclient.Client, loc *time.Location, logger *slog.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// Load busca as quatro listas em paralelo e só agrega quando todas
// chegaram. A primeira falha cancela as demais.
func (s *Service) Load(ctx context.Context, ts apiclient.TokenSource) (Data, error) {
	api := s.client.For(ts)
	var in Inputs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		aps, err := api.Appointments.List(gctx)
		if err != nil {
			return fmt.Errorf("appointments: %w", err)
		}
		in.Appointments = aps
		return nil
	})
	g.Go(func() error {
		clients, err := api.Clients.List(gctx)
		if err != nil {
			return fmt.Errorf("clients: %w", err)
		}
		in.Clients = clients
		return nil
	})
	g.Go(func() error {
		entries, err := api.Finance.List(gctx)
		if err != nil {
			return fmt.Errorf("finance: %w", err)
		}
		in.Finance = entries
		return nil
	})
	g.Go(func() error {
		pros, err := api.Professionals.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("professionals: %w", err)
		}
		in.Professionals = pros
		return nil
	})

	start := time.Now()
	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard fetch failed", "err", err)
		return Data{}, err
	}

	data := Build(in, s.now().In(s.loc))
	s.logger.Debug("dashboard built",
		"appointments", len(in.Appointments),
		"clients", len(in.Clients),
		"finance", len(in.Finance),
		"professionals", len(in.Professionals),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}
