// Package reminder keeps one daily timer per medication schedule, turns timer
// and notification-action events into store writes, and posts desktop
// notifications.
package reminder

//go:generate mockgen -source=reminder.go -destination=mocks/mock_reminder.go -package=mocks

import (
	"context"
	"time"

	"liyu1981.xyz/glucose-tracker/pkg/models"
)

const (
	ChannelReminders = "medication_reminders"

	// request codes and notification ids are derived from the medication id
	MarkTakenRequestOffset = 10000
	ConfirmationIDOffset   = 50000

	TestMedicationID = 999

	ConfirmationTimeout = 3 * time.Second
	AcknowledgeNotes    = "Marked from notification"
)

// Fire is the payload an armed timer carries. Hour and Minute are -1 when the
// time of day is unknown; Target is zero when the original fire time is.
type Fire struct {
	ScheduleID   uint      `json:"schedule_id"`
	MedicationID uint      `json:"medication_id"`
	Name         string    `json:"medication_name"`
	Dosage       string    `json:"medication_dosage"`
	Hour         int       `json:"time_hour"`
	Minute       int       `json:"time_minute"`
	Target       time.Time `json:"target_time"`
}

func fireFor(med models.Medication, schedule models.MedicationSchedule, at time.Time) Fire {
	return Fire{
		ScheduleID:   schedule.ID,
		MedicationID: med.ID,
		Name:         med.Name,
		Dosage:       med.Dosage,
		Hour:         schedule.TimeHour,
		Minute:       schedule.TimeMinute,
		Target:       at,
	}
}

func (f Fire) hasClock() bool {
	return f.Hour >= 0 && f.Hour <= 23 && f.Minute >= 0 && f.Minute <= 59
}

// matchesClock reports whether the fire was armed for hour:minute. A fire
// that carries neither a target nor a time of day matches nothing.
func (f Fire) matchesClock(hour, minute int, location *time.Location) bool {
	if !f.Target.IsZero() {
		target := f.Target.In(location)
		return target.Hour() == hour && target.Minute() == minute
	}
	return f.hasClock() && f.Hour == hour && f.Minute == minute
}

// Alarm is one armed timer.
type Alarm struct {
	ScheduleID   uint      `json:"schedule_id"`
	MedicationID uint      `json:"medication_id"`
	At           time.Time `json:"at"`
}

// AlarmClock is a registry of one-shot timers keyed by schedule id.
type AlarmClock interface {
	// CanScheduleExact reports whether wake-up timers may be registered at all.
	CanScheduleExact() bool
	// Arm registers fire at fire.Target, replacing the timer of the same schedule.
	Arm(fire Fire, onFire func(Fire)) error
	// Disarm removes the timer of a schedule and reports whether one existed.
	Disarm(scheduleID uint) bool
	DisarmAll()
	Pending() []Alarm
}

// Action is a button on a notification; pressing it delivers Event.
type Action struct {
	Label       string `json:"label"`
	RequestCode int    `json:"request_code"`
	Event       Event  `json:"event"`
}

type Notification struct {
	ID       int           `json:"id"`
	Channel  string        `json:"channel"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	OpenID   uint          `json:"open_medication_id,omitempty"`
	Actions  []Action      `json:"actions,omitempty"`
	Timeout  time.Duration `json:"timeout,omitempty"`
	PostedAt time.Time     `json:"posted_at"`
}

type Notifier interface {
	// Notify shows n, replacing a live notification with the same id.
	Notify(n Notification) error
	Dismiss(id int)
	Active() []Notification
}

// Store is what reminders read from and write to.
type Store interface {
	LogTaken(ctx context.Context, medicationID uint, notes string) (*models.MedicationLog, error)
	ReminderTargets(ctx context.Context) ([]models.Medication, error)
	// ReminderTarget loads a schedule and its medication as currently stored.
	ReminderTarget(ctx context.Context, scheduleID uint) (*models.Medication, *models.MedicationSchedule, error)
}

// Handler receives decoded inbound events.
type Handler interface {
	OnFire(ctx context.Context, fire Fire) error
	Acknowledge(ctx context.Context, medicationID uint) error
	Rebuild(ctx context.Context) error
}
