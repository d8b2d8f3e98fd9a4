package tracker_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/glucose-tracker/pkg/db"
	"liyu1981.xyz/glucose-tracker/pkg/models"
	"liyu1981.xyz/glucose-tracker/pkg/tracker"
	"liyu1981.xyz/glucose-tracker/pkg/tracker/mocks"
)

// monday 14:00 UTC
var testNow = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

func GetMockTrackerWithMemorySqliteDialector(t *testing.T, clock clockwork.Clock, useMockIReminder bool) (
	*gomock.Controller,
	*tracker.Tracker,
	*mocks.MockIReminder,
) {
	ctrl := gomock.NewController(t)

	mockIReminder := mocks.NewMockIReminder(ctrl)
	store, err := db.Open(db.UseMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	trackerObj := tracker.New(store, clock)
	if useMockIReminder {
		trackerObj.WithServices(tracker.ServiceOpts{Reminder: mockIReminder})
	}

	return ctrl, trackerObj, mockIReminder
}

func seedMedication(t *testing.T, trackerObj *tracker.Tracker, name string, active bool) models.Medication {
	t.Helper()
	med := models.Medication{Name: name, Dosage: "10mg", IsActive: active}
	require.NoError(t, trackerObj.Db.Conn.Create(&med).Error)
	return med
}

func seedSchedule(t *testing.T, trackerObj *tracker.Tracker, medID uint, hour, minute int, active, reminder bool) models.MedicationSchedule {
	t.Helper()
	schedule := models.MedicationSchedule{
		MedicationID:    medID,
		TimeHour:        hour,
		TimeMinute:      minute,
		IsActive:        active,
		ReminderEnabled: reminder,
	}
	require.NoError(t, trackerObj.Db.Conn.Create(&schedule).Error)
	return schedule
}

// waitFor reads snapshots until one satisfies cond.
func waitFor[T any](t *testing.T, ch <-chan tracker.Snapshot[T], cond func(tracker.Snapshot[T]) bool) tracker.Snapshot[T] {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case snap, ok := <-ch:
			require.True(t, ok, "live query closed early")
			if cond(snap) {
				return snap
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
			return tracker.Snapshot[T]{}
		}
	}
}

func rowCount[T any](n int) func(tracker.Snapshot[T]) bool {
	return func(snap tracker.Snapshot[T]) bool {
		return snap.Err == nil && len(snap.Rows) == n
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
