package audit

import (
	"sync"
)

const (
	ActionAppointmentBooked = "appointment booked"
	ActionAppointmentFailed = "appointment relay failed"
)

type Event struct {
	Action    string
	RequestID string
	FullName  string
	Date      string
	Time      string
	Service   string
	Status    string
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.logger.Log(ev)
	}
}

// Dispatch never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) bool {
	select {
	case d.queue <- ev:
		return true
	default:
		d.logger.log.Warn("audit queue full, dropping event")
		return false
	}
}

// Close drains the queue and stops the worker. Dispatch must not be called
// afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
