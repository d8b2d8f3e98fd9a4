package db

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

// cascades lists tables whose rows disappear with a parent delete. The store
// removes them without going through gorm, so their watchers are told here.
var cascades = map[string][]string{
	"medications": {"medication_schedules", "medication_logs"},
}

// Subscription is a wake-up signal for one live query. C holds at most one
// pending signal; several writes before the reader wakes collapse into one.
type Subscription struct {
	C      <-chan struct{}
	c      chan struct{}
	tables map[string]struct{}
}

type ChangeFeed struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[*Subscription]struct{})}
}

func (f *ChangeFeed) Subscribe(tables ...string) *Subscription {
	c := make(chan struct{}, 1)
	sub := &Subscription{C: c, c: c, tables: make(map[string]struct{}, len(tables))}
	for _, t := range tables {
		sub.tables[t] = struct{}{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		close(c)
		return sub
	}
	f.subs[sub] = struct{}{}
	return sub
}

func (f *ChangeFeed) Unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[sub]; ok {
		delete(f.subs, sub)
		close(sub.c)
	}
}

func (f *ChangeFeed) Publish(table string) {
	affected := append([]string{table}, cascades[table]...)

	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subs {
		for _, t := range affected {
			if _, ok := sub.tables[t]; ok {
				select {
				case sub.c <- struct{}{}:
				default:
				}
				break
			}
		}
	}
}

// Subscribers is the number of live subscriptions.
func (f *ChangeFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close ends every subscription; their channels are closed.
func (f *ChangeFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subs {
		close(sub.c)
	}
	f.subs = make(map[*Subscription]struct{})
	f.closed = true
}

// registerChangeCallbacks publishes the written table after each create,
// update and delete has committed.
func (d *DB) registerChangeCallbacks() error {
	logger := common.GetLoggerWith(common.LoggerNameStore)

	publish := func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement == nil || tx.Statement.Table == "" {
			return
		}
		if tx.RowsAffected == 0 {
			return
		}
		logger.Debug("Table changed", zap.String("table", tx.Statement.Table))
		d.Changes.Publish(tx.Statement.Table)
	}

	callbacks := d.Conn.Callback()
	if err := callbacks.Create().After("gorm:commit_or_rollback_transaction").Register("tracker:publish_create", publish); err != nil {
		return err
	}
	if err := callbacks.Update().After("gorm:commit_or_rollback_transaction").Register("tracker:publish_update", publish); err != nil {
		return err
	}
	return callbacks.Delete().After("gorm:commit_or_rollback_transaction").Register("tracker:publish_delete", publish)
}
