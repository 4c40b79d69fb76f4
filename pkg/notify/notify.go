package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Kxngreece/Healstep-API/pkg/common"
	"github.com/Kxngreece/Healstep-API/pkg/config"
	"github.com/Kxngreece/Healstep-API/pkg/models"
)

//go:generate mockgen -source=notify.go -destination=mocks/mock_mailer.go -package=mocks

// ErrDelivery marks a notification that was not handed to the mail gateway.
var ErrDelivery = errors.New("delivery failure")

const DefaultSendTimeout = 30 * time.Second

type Mailer interface {
	Send(ctx context.Context, to []string, subject string, htmlBody string) error
}

type kind string

const (
	kindAlert    kind = "alert"
	kindFeedback kind = "feedback"
)

type job struct {
	kind    kind
	ref     uint
	subject string
	body    string
}

type DispatcherOpts struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher delivers notifications on its own worker goroutines. Each job
// gets one send attempt, failures are logged and dropped.
type Dispatcher struct {
	mailer  Mailer
	timeout time.Duration
	jobs    chan job
	wg      sync.WaitGroup

	intake sync.RWMutex
	closed bool

	mu         sync.RWMutex
	recipients config.Recipients
}

func NewDispatcher(mailer Mailer, recipients config.Recipients, opts DispatcherOpts) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = config.DefaultNotifyWorkers
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = config.DefaultNotifyQueueSize
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = DefaultSendTimeout
	}

	d := &Dispatcher{
		mailer:     mailer,
		timeout:    opts.SendTimeout,
		jobs:       make(chan job, opts.QueueSize),
		recipients: recipients,
	}

	d.wg.Add(opts.Workers)
	for range opts.Workers {
		go d.work()
	}
	return d
}

func logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameNotifier)
}

// SetRecipients swaps both lists, jobs already queued pick up the new lists.
func (d *Dispatcher) SetRecipients(recipients *config.Recipients) {
	if recipients == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recipients = *recipients
}

func (d *Dispatcher) recipientsFor(k kind) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var list []string
	switch k {
	case kindAlert:
		list = d.recipients.Alerts
	case kindFeedback:
		list = d.recipients.Feedback
	}
	return append([]string(nil), list...)
}

func (d *Dispatcher) NotifyAlert(alert models.Alert) {
	subject, body, err := RenderAlert(alert)
	if err != nil {
		logger().Error("Alert notification not rendered", zap.Uint("alert_id", alert.ID), zap.Error(err))
		return
	}
	d.enqueue(job{kind: kindAlert, ref: alert.ID, subject: subject, body: body})
}

func (d *Dispatcher) NotifyFeedback(feedback models.Feedback) {
	subject, body, err := RenderFeedback(feedback)
	if err != nil {
		logger().Error("Feedback notification not rendered", zap.Uint("feedback_id", feedback.ID), zap.Error(err))
		return
	}
	d.enqueue(job{kind: kindFeedback, ref: feedback.ID, subject: subject, body: body})
}

func (d *Dispatcher) enqueue(j job) {
	d.intake.RLock()
	defer d.intake.RUnlock()

	if d.closed {
		logger().Warn("Notification dropped, dispatcher closed",
			zap.String("kind", string(j.kind)), zap.Uint("ref", j.ref), zap.Error(ErrDelivery))
		return
	}

	select {
	case d.jobs <- j:
	default:
		logger().Error("Notification dropped, queue full",
			zap.String("kind", string(j.kind)), zap.Uint("ref", j.ref), zap.Error(ErrDelivery))
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for j := range d.jobs {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	to := d.recipientsFor(j.kind)
	if len(to) == 0 {
		logger().Warn("Notification skipped, no recipients configured",
			zap.String("kind", string(j.kind)), zap.Uint("ref", j.ref))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.mailer.Send(ctx, to, j.subject, j.body); err != nil {
		logger().Error("Notification not delivered",
			zap.String("kind", string(j.kind)),
			zap.Uint("ref", j.ref),
			zap.Strings("to", to),
			zap.Error(fmt.Errorf("%w: %w", ErrDelivery, err)))
		return
	}

	logger().Info("Notification delivered",
		zap.String("kind", string(j.kind)),
		zap.Uint("ref", j.ref),
		zap.Int("recipients", len(to)))
}

// Close stops intake and waits for the queued jobs to finish.
func (d *Dispatcher) Close() {
	d.intake.Lock()
	if d.closed {
		d.intake.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.intake.Unlock()

	d.wg.Wait()
}
