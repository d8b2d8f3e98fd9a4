package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

// NextOccurrence is today at hour:minute in now's location when that is
// strictly after now, otherwise the same time tomorrow.
func NextOccurrence(now time.Time, hour, minute int) time.Time {
	y, m, d := now.Date()
	target := time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = time.Date(y, m, d+1, hour, minute, 0, 0, now.Location())
	}
	return target
}

// Manager arms, fires and acknowledges medication reminders.
type Manager struct {
	alarms     AlarmClock
	notifier   Notifier
	store      Store
	clock      clockwork.Clock
	location   *time.Location
	dispatcher *Dispatcher
}

func NewManager(alarms AlarmClock, notifier Notifier, store Store, clock clockwork.Clock, location *time.Location) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.Local
	}
	return &Manager{
		alarms:   alarms,
		notifier: notifier,
		store:    store,
		clock:    clock,
		location: location,
	}
}

// WithDispatcher routes timer callbacks through the event queue instead of
// handling them on the timer goroutine.
func (m *Manager) WithDispatcher(dispatcher *Dispatcher) *Manager {
	m.dispatcher = dispatcher
	return m
}

func (m *Manager) now() time.Time {
	return m.clock.Now().In(m.location)
}

func logger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameReminder, common.LoggerCategoryAlarm)
}

// ScheduleReminder arms the next daily fire of a schedule, replacing any timer
// it already had. Schedules that should not remind are disarmed instead.
func (m *Manager) ScheduleReminder(med models.Medication, schedule models.MedicationSchedule) {
	if !schedule.Armable(med) {
		m.CancelReminder(schedule.ID)
		return
	}
	at := NextOccurrence(m.now(), schedule.TimeHour, schedule.TimeMinute)
	m.arm(fireFor(med, schedule, at))
}

func (m *Manager) arm(fire Fire) {
	log := logger().With(zap.Uint("schedule_id", fire.ScheduleID), zap.Uint("medication_id", fire.MedicationID))

	if !m.alarms.CanScheduleExact() {
		common.LogError(log, "Cannot schedule exact alarms", common.ErrExactAlarmsDenied)
		return
	}
	if err := m.alarms.Arm(fire, m.onTimer); err != nil {
		log.Error("Arm reminder failed", zap.Error(err))
		return
	}
	log.Info("Reminder scheduled", zap.String("medication", fire.Name), zap.Time("at", fire.Target))
}

// onTimer runs on the timer goroutine.
func (m *Manager) onTimer(fire Fire) {
	if m.dispatcher == nil {
		_ = m.OnFire(context.Background(), fire)
		return
	}
	if _, err := m.dispatcher.Post(FireEvent(fire)); err != nil {
		common.LogError(logger(), "Queue reminder fire failed", err)
	}
}

func (m *Manager) CancelReminder(scheduleID uint) {
	if m.alarms.Disarm(scheduleID) {
		logger().Info("Cancelled reminder", zap.Uint("schedule_id", scheduleID))
	}
}

func reminderNotification(medicationID uint, name, dosage string) Notification {
	return Notification{
		ID:      int(medicationID),
		Channel: ChannelReminders,
		Title:   "💊 Medication Reminder",
		Body:    fmt.Sprintf("It's time to take your medication: %s (%s)", name, dosage),
		OpenID:  medicationID,
		Actions: []Action{{
			Label:       "Mark as Taken",
			RequestCode: int(medicationID) + MarkTakenRequestOffset,
			Event:       MarkAsTakenEvent(medicationID),
		}},
	}
}

// OnFire shows the reminder and re-arms the schedule one day after the fire
// it handled. The schedule is reloaded first: a fire for a schedule that was
// removed or stopped reminding after the timer went off is dropped.
func (m *Manager) OnFire(ctx context.Context, fire Fire) error {
	log := logger().With(zap.Uint("schedule_id", fire.ScheduleID), zap.Uint("medication_id", fire.MedicationID))
	log.Info("Reminder fired", zap.String("medication", fire.Name), zap.Time("target", fire.Target))

	med, schedule, err := m.store.ReminderTarget(ctx, fire.ScheduleID)
	switch {
	case common.IsErrorType(err, common.ErrorTypeNotFound):
		m.CancelReminder(fire.ScheduleID)
		common.LogError(log, "Reminder fired for a removed schedule, dropped", err)
		return err
	case err != nil:
		// keep the daily cycle going on what the timer carried
		common.LogError(log, "Load schedule for fired reminder failed", err)
	case !schedule.Armable(*med):
		m.CancelReminder(fire.ScheduleID)
		log.Info("Reminder fired for a schedule that no longer reminds, dropped")
		return nil
	default:
		moved := !fire.matchesClock(schedule.TimeHour, schedule.TimeMinute, m.location)
		fire = fireFor(*med, *schedule, fire.Target)
		if moved {
			// the time of day changed while this fire was queued
			m.notify(log, fire)
			m.ScheduleReminder(*med, *schedule)
			return nil
		}
	}

	m.notify(log, fire)

	next, ok := m.nextFire(fire)
	if !ok {
		log.Warn("Reminder fired without a time of day, not re-armed")
		return nil
	}
	fire.Target = next
	m.arm(fire)
	return nil
}

func (m *Manager) notify(log *zap.Logger, fire Fire) {
	if err := m.notifier.Notify(reminderNotification(fire.MedicationID, fire.Name, fire.Dosage)); err != nil {
		common.LogError(log, "Show reminder failed", err)
	}
}

func (m *Manager) nextFire(fire Fire) (time.Time, bool) {
	now := m.now()
	switch {
	case !fire.Target.IsZero():
		next := fire.Target.Add(24 * time.Hour)
		if next.After(now) {
			return next, true
		}
		// missed one or more days while the process was not running
		target := fire.Target.In(m.location)
		return NextOccurrence(now, target.Hour(), target.Minute()), true
	case fire.hasClock():
		y, mo, d := now.Date()
		return time.Date(y, mo, d+1, fire.Hour, fire.Minute, 0, 0, m.location), true
	default:
		return time.Time{}, false
	}
}

// Acknowledge records a dose taken from a reminder. Every call appends a log.
func (m *Manager) Acknowledge(ctx context.Context, medicationID uint) error {
	log := logger().With(zap.Uint("medication_id", medicationID))

	entry, err := m.store.LogTaken(ctx, medicationID, AcknowledgeNotes)
	if err != nil {
		common.LogError(log, "Mark as taken failed", err)
		return err
	}
	log.Info("Marked as taken from notification", zap.Uint("log_id", entry.ID))

	m.notifier.Dismiss(int(medicationID))

	err = m.notifier.Notify(Notification{
		ID:      int(medicationID) + ConfirmationIDOffset,
		Channel: ChannelReminders,
		Title:   "✅ Medication Taken",
		Body:    "Successfully logged your medication",
		Timeout: ConfirmationTimeout,
	})
	if err != nil {
		common.LogError(log, "Show confirmation failed", err)
	}
	return nil
}

// Rebuild disarms every timer and arms one per reminder-enabled schedule of
// every active medication.
func (m *Manager) Rebuild(ctx context.Context) error {
	targets, err := m.store.ReminderTargets(ctx)
	if err != nil {
		common.LogError(logger(), "Rebuild reminders failed", err)
		return err
	}

	m.alarms.DisarmAll()
	count := 0
	for _, med := range targets {
		for _, schedule := range med.Schedules {
			m.ScheduleReminder(med, schedule)
			count++
		}
	}

	logger().Info("Reminders rebuilt", zap.Int("medications", len(targets)), zap.Int("schedules", count))
	return nil
}

func (m *Manager) TestNotification() error {
	err := m.notifier.Notify(reminderNotification(TestMedicationID, "Test Medication", "10mg"))
	if err != nil {
		common.LogError(logger(), "Show test notification failed", err)
	}
	return err
}

func (m *Manager) Pending() []Alarm {
	return m.alarms.Pending()
}

func (m *Manager) Notifications() []Notification {
	return m.notifier.Active()
}
