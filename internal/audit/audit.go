package audit

import "go.uber.org/zap"

type Event struct {
	Action   string
	Entity   string
	EntityID int64
	Metadata any
}

// Dispatcher records audit events off the request path. The queue is
// bounded; when it fills up events are dropped rather than blocking a
// booking.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log.Named("audit"),
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.log.Info(ev.Action,
			zap.String("entity", ev.Entity),
			zap.Int64("entity_id", ev.EntityID),
			zap.Any("metadata", ev.Metadata),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
