package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const queueSize = 100

type Dispatcher struct {
	sink   Sink
	logger *slog.Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(sink Sink, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "entity", ev.Entity, "err", err)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia a requisição: com a fila cheia o evento é
// descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action, "entity", ev.Entity)
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

// LogSink só escreve no log; usado quando não há banco configurado.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Log(_ context.Context, ev Event) error {
	s.Logger.Info("audit",
		"user", ev.UserEmail,
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
	)
	return nil
}
