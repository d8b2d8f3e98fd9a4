package reminder

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

const DefaultQueueSize = 64

type envelope struct {
	id    string
	ctx   context.Context
	event Event
	done  chan error
}

// Dispatcher is the inbound event queue. A single worker started with Run
// drains it in order, so a handler finishes its store write and notification
// update before the next event starts.
type Dispatcher struct {
	handler Handler
	queue   chan envelope

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewDispatcher(handler Handler, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Dispatcher{
		handler: handler,
		queue:   make(chan envelope, size),
		stopped: make(chan struct{}),
	}
}

// Post enqueues event without waiting for it to be handled. It returns the
// event id used in the logs.
func (d *Dispatcher) Post(event Event) (string, error) {
	env := envelope{id: uuid.NewString(), ctx: context.Background(), event: event}
	return env.id, d.enqueue(context.Background(), env)
}

// Deliver enqueues event and waits until the worker has handled it.
// Malformed and unknown events come back as malformed_event errors.
func (d *Dispatcher) Deliver(ctx context.Context, event Event) (string, error) {
	env := envelope{id: uuid.NewString(), ctx: ctx, event: event, done: make(chan error, 1)}
	if err := d.enqueue(ctx, env); err != nil {
		return env.id, err
	}

	select {
	case err := <-env.done:
		return env.id, err
	case <-ctx.Done():
		return env.id, ctx.Err()
	case <-d.stopped:
		// the worker may have finished this event just before stopping
		select {
		case err := <-env.done:
			return env.id, err
		default:
			return env.id, common.ErrQueueClosed
		}
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, env envelope) error {
	select {
	case <-d.stopped:
		return common.ErrQueueClosed
	default:
	}

	select {
	case d.queue <- env:
		return nil
	case <-d.stopped:
		return common.ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run handles events until ctx ends. Events still queued at that point are
// dropped.
func (d *Dispatcher) Run(ctx context.Context) {
	logger := common.GetCategoryLogger(common.LoggerNameReminder, common.LoggerCategoryDispatcher)
	logger.Info("Event dispatcher started", zap.Int("queue_size", cap(d.queue)))

	defer func() {
		d.stopOnce.Do(func() { close(d.stopped) })
		logger.Info("Event dispatcher stopped", zap.Int("dropped", len(d.queue)))
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-d.queue:
			err := d.dispatch(env)
			if env.done != nil {
				env.done <- err
			}
		}
	}
}

func (d *Dispatcher) dispatch(env envelope) (err error) {
	logger := common.GetCategoryLogger(common.LoggerNameReminder, common.LoggerCategoryDispatcher).
		With(zap.String("event_id", env.id), zap.String("action", env.event.Action))

	defer func() {
		// a failing handler must not take the worker down
		if r := recover(); r != nil {
			err = common.NewError(common.ErrorTypeStorage, "HANDLER_PANIC", fmt.Sprintf("event handler panicked: %v", r))
			common.LogError(logger, "Event handler panicked", err)
		}
	}()

	logger.Info("Handling event", zap.Any("extras", env.event.Extras))

	ctx := env.ctx
	switch env.event.Action {
	case ActionFireReminder:
		fire, perr := parseFire(env.event.Extras)
		if perr != nil {
			common.LogError(logger, "Dropped malformed event", perr)
			return perr
		}
		err = d.handler.OnFire(ctx, fire)
	case ActionMarkAsTaken:
		medicationID, perr := parseMedicationID(env.event.Extras)
		if perr != nil {
			common.LogError(logger, "Dropped malformed event", perr)
			return perr
		}
		err = d.handler.Acknowledge(ctx, medicationID)
	case ActionBootCompleted, ActionMyPackageReplaced:
		err = d.handler.Rebuild(ctx)
	default:
		err = common.WithMessage(common.ErrUnknownEvent, fmt.Sprintf("unknown action %q", env.event.Action))
		common.LogError(logger, "Dropped unknown event", err)
		return err
	}

	if err != nil {
		common.LogError(logger, "Event handling failed", err)
		return err
	}
	logger.Info("Event handled")
	return nil
}
