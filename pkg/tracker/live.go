package tracker

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

const (
	tableProfiles  = "user_profiles"
	tableReadings  = "glucose_readings"
	tableMeds      = "medications"
	tableSchedules = "medication_schedules"
	tableLogs      = "medication_logs"
)

// Snapshot is one emission of a live query.
type Snapshot[T any] struct {
	Rows []T
	Err  error
}

// watch runs query now and again after every change to one of tables. The
// returned channel always holds the newest result: an unread older snapshot is
// replaced. The subscription ends and the channel closes with ctx.
func watch[T any](ctx context.Context, t *Tracker, tables []string, query func(tx *gorm.DB) ([]T, error)) <-chan Snapshot[T] {
	out := make(chan Snapshot[T], 1)
	sub := t.Db.Changes.Subscribe(tables...)

	go func() {
		defer close(out)
		defer t.Db.Changes.Unsubscribe(sub)

		for {
			rows, err := query(t.Db.Conn.WithContext(ctx))
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				err = storageErr(err, "live query")
				common.LogError(common.GetLoggerWith(common.LoggerNameTrackerCore), "Live query failed", err)
			}
			offer(out, Snapshot[T]{Rows: rows, Err: err})

			select {
			case <-ctx.Done():
				return
			case _, ok := <-sub.C:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

// offer is only called by the single producer goroutine of out.
func offer[T any](out chan Snapshot[T], snap Snapshot[T]) {
	select {
	case out <- snap:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	out <- snap
}

// publish notifies watchers after a multi-statement transaction committed.
func (t *Tracker) publish(tables ...string) {
	for _, table := range tables {
		t.Db.Changes.Publish(table)
	}
}

func storageErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return common.StorageError(err, op+" failed")
}

// findErr maps gorm's missing-row error to the given not-found error.
func findErr(err error, notFound *common.AppError, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storageErr(err, op)
}
