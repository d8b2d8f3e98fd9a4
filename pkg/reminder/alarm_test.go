package reminder_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
)

func TestGocronAlarmsRegistry(t *testing.T) {
	common.SetTestLoggerNop()

	alarms, err := reminder.NewGocronAlarms(clockwork.NewFakeClockAt(testNow), true)
	require.NoError(t, err)
	defer alarms.Shutdown()

	assert.True(t, alarms.CanScheduleExact())

	noop := func(reminder.Fire) {}
	require.NoError(t, alarms.Arm(reminder.Fire{ScheduleID: 1, MedicationID: 1, Target: testNow.Add(2 * time.Hour)}, noop))
	require.NoError(t, alarms.Arm(reminder.Fire{ScheduleID: 2, MedicationID: 1, Target: testNow.Add(time.Hour)}, noop))
	require.NoError(t, alarms.Arm(reminder.Fire{ScheduleID: 3, MedicationID: 2, Target: testNow.Add(3 * time.Hour)}, noop))

	pending := alarms.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, []uint{2, 1, 3}, []uint{pending[0].ScheduleID, pending[1].ScheduleID, pending[2].ScheduleID})
	assert.Equal(t, uint(2), pending[2].MedicationID)

	assert.True(t, alarms.Disarm(2))
	assert.False(t, alarms.Disarm(2))
	assert.Len(t, alarms.Pending(), 2)

	alarms.DisarmAll()
	assert.Empty(t, alarms.Pending())
}

func TestGocronAlarmsRejectPastTargets(t *testing.T) {
	common.SetTestLoggerNop()

	alarms, err := reminder.NewGocronAlarms(clockwork.NewFakeClockAt(testNow), true)
	require.NoError(t, err)
	defer alarms.Shutdown()

	err = alarms.Arm(reminder.Fire{ScheduleID: 1, MedicationID: 1, Target: testNow.Add(-time.Minute)}, func(reminder.Fire) {})
	assert.Error(t, err)
	assert.Empty(t, alarms.Pending())
}

func TestGocronAlarmsFire(t *testing.T) {
	common.SetTestLoggerNop()

	alarms, err := reminder.NewGocronAlarms(clockwork.NewRealClock(), true)
	require.NoError(t, err)
	alarms.Start()
	defer alarms.Shutdown()

	fired := make(chan reminder.Fire, 2)
	fire := reminder.Fire{ScheduleID: 7, MedicationID: 3, Name: "Metformin", Dosage: "500mg", Target: time.Now().Add(300 * time.Millisecond)}
	require.NoError(t, alarms.Arm(fire, func(f reminder.Fire) { fired <- f }))

	// re-arming replaces the first job
	fire.Target = time.Now().Add(500 * time.Millisecond)
	require.NoError(t, alarms.Arm(fire, func(f reminder.Fire) { fired <- f }))
	require.Len(t, alarms.Pending(), 1)

	select {
	case got := <-fired:
		assert.Equal(t, uint(7), got.ScheduleID)
		assert.True(t, got.Target.Equal(fire.Target))
	case <-time.After(5 * time.Second):
		t.Fatal("alarm did not fire")
	}

	assert.Eventually(t, func() bool { return len(alarms.Pending()) == 0 }, 2*time.Second, 10*time.Millisecond)

	select {
	case <-fired:
		t.Fatal("replaced alarm fired")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestGocronAlarmsRearmFromFiringTask(t *testing.T) {
	common.SetTestLoggerNop()

	alarms, err := reminder.NewGocronAlarms(clockwork.NewRealClock(), true)
	require.NoError(t, err)
	alarms.Start()
	defer alarms.Shutdown()

	const schedules = 16
	var mu sync.Mutex
	fires := make(map[uint]int)
	done := make(chan struct{}, schedules)

	// every schedule fires once, re-arms itself from the task and fires again
	var onFire func(reminder.Fire)
	onFire = func(f reminder.Fire) {
		mu.Lock()
		fires[f.ScheduleID]++
		count := fires[f.ScheduleID]
		mu.Unlock()

		if count == 1 {
			f.Target = time.Now().Add(50 * time.Millisecond)
			assert.NoError(t, alarms.Arm(f, onFire))
			return
		}
		done <- struct{}{}
	}

	for i := uint(1); i <= schedules; i++ {
		require.NoError(t, alarms.Arm(reminder.Fire{ScheduleID: i, MedicationID: i, Target: time.Now().Add(100 * time.Millisecond)}, onFire))
	}

	for range schedules {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("re-armed alarm did not fire")
		}
	}

	assert.Eventually(t, func() bool { return len(alarms.Pending()) == 0 }, 2*time.Second, 10*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	for i := uint(1); i <= schedules; i++ {
		assert.Equal(t, 2, fires[i], "schedule %d", i)
	}
}

func TestGocronAlarmsDisarmBeforeFire(t *testing.T) {
	common.SetTestLoggerNop()

	alarms, err := reminder.NewGocronAlarms(clockwork.NewRealClock(), true)
	require.NoError(t, err)
	alarms.Start()
	defer alarms.Shutdown()

	fired := make(chan struct{}, 1)
	require.NoError(t, alarms.Arm(reminder.Fire{ScheduleID: 1, MedicationID: 1, Target: time.Now().Add(300 * time.Millisecond)},
		func(reminder.Fire) { fired <- struct{}{} }))
	require.True(t, alarms.Disarm(1))

	select {
	case <-fired:
		t.Fatal("disarmed alarm fired")
	case <-time.After(800 * time.Millisecond):
	}
}

func TestGocronAlarmsWithoutExactPermission(t *testing.T) {
	alarms, err := reminder.NewGocronAlarms(nil, false)
	require.NoError(t, err)
	defer alarms.Shutdown()

	assert.False(t, alarms.CanScheduleExact())
}
