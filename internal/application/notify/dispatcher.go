package notify

import (
	"context"
	"sync"
	"time"

	"github.com/isokohq/isoko-api/pkg/config"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// Email is one outbound notification.
type Email struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender delivers one email. Implementations live in infrastructure.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// Dispatcher queues notification emails and delivers them from a background
// worker so HTTP handlers never block on SMTP. The queue is bounded: when it
// is full the email is dropped and logged, never the request failed.
type Dispatcher struct {
	queue       chan Email
	sender      Sender
	log         *logger.Logger
	maxAttempts int
	backoff     time.Duration

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewDispatcher starts the delivery worker.
func NewDispatcher(sender Sender, cfg config.NotifyConfig, log *logger.Logger) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffMS <= 0 {
		cfg.BackoffMS = 500
	}
	d := &Dispatcher{
		queue:       make(chan Email, cfg.QueueSize),
		sender:      sender,
		log:         log,
		maxAttempts: cfg.MaxAttempts,
		backoff:     time.Duration(cfg.BackoffMS) * time.Millisecond,
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Enqueue hands an email to the worker. Returns false when the queue is full
// or the dispatcher is shutting down; the email is dropped either way.
func (d *Dispatcher) Enqueue(e Email) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.log.Warn().Str("to", e.To).Msg("notify: dispatcher closed, email dropped")
		return false
	}
	select {
	case d.queue <- e:
		return true
	default:
		d.log.Warn().Str("to", e.To).Str("subject", e.Subject).Msg("notify: queue full, email dropped")
		return false
	}
}

// Close stops accepting emails, drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for e := range d.queue {
		d.deliver(e)
	}
}

// deliver retries with doubling backoff. A permanently failing email is
// logged and abandoned; there is no dead-letter store.
func (d *Dispatcher) deliver(e Email) {
	wait := d.backoff
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.sender.Send(context.Background(), e)
		if err == nil {
			return
		}
		if attempt == d.maxAttempts {
			d.log.Error().Err(err).Str("to", e.To).Int("attempts", attempt).Msg("notify: delivery failed")
			return
		}
		d.log.Warn().Err(err).Str("to", e.To).Int("attempt", attempt).Msg("notify: delivery retry")
		time.Sleep(wait)
		wait *= 2
	}
}
