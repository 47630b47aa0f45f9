package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api/metrics"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

const (
	defaultWorkers     = 4
	defaultBuffer      = 256
	defaultSendTimeout = 15 * time.Second
)

// Dispatcher delivers queued notification emails through a fixed pool
// of workers. Enqueue returns as soon as the message is buffered;
// delivery outcome is logged and counted, never reported back. Each
// send is bounded by a deadline so a hung transport cannot pin a
// worker indefinitely.
type Dispatcher struct {
	ch          chan ports.OutboundEmail
	mailer      ports.Mailer
	sendTimeout time.Duration
	workers     int
	log         zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers
// and a buffer of queueSize pending messages. Non-positive values fall
// back to defaults.
func NewDispatcher(numWorkers, queueSize int, sendTimeout time.Duration, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultBuffer
	}
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &Dispatcher{
		ch:          make(chan ports.OutboundEmail, queueSize),
		mailer:      mailer,
		sendTimeout: sendTimeout,
		workers:     numWorkers,
		log:         log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is
// cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue buffers a message for asynchronous delivery. The call blocks
// only when the buffer is full.
func (d *Dispatcher) Enqueue(msg ports.OutboundEmail) {
	d.ch <- msg
	metrics.NotificationsAttemptedTotal.Inc()
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, msg)
		}
	}
}

// deliver sends one message. A failure is terminal for this recipient:
// it is logged and counted, never retried, and never propagated.
func (d *Dispatcher) deliver(ctx context.Context, workerID int, msg ports.OutboundEmail) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.mailer.Send(sendCtx, msg)
	metrics.NotificationSendDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		reason := "send_failed"
		if sendCtx.Err() == context.DeadlineExceeded {
			reason = "timeout"
		}
		metrics.NotificationsFailedTotal.WithLabelValues(reason).Inc()
		d.log.Error().Err(err).
			Str("to", msg.To).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	d.log.Debug().
		Str("to", msg.To).
		Int("worker_id", workerID).
		Msg("notification delivered")
}
