package tracker

//go:generate mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"liyu1981.xyz/glucose-tracker/pkg/analytics"
	"liyu1981.xyz/glucose-tracker/pkg/db"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

type IProfile interface {
	CreateProfile(ctx context.Context, input *models.UserProfile) (uint, error)
	UpdateProfile(ctx context.Context, input *models.UserProfile) error
	GetProfile(ctx context.Context, id uint) (*models.UserProfile, error)
	GetActiveProfile(ctx context.Context) (*models.UserProfile, error)
	HasActiveUser(ctx context.Context) (bool, error)
	UserExists(ctx context.Context, username string) (bool, error)
	SetActiveUser(ctx context.Context, username string) error
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	Logout(ctx context.Context) error
	ClearUserData(ctx context.Context) error
	WatchActiveProfile(ctx context.Context) <-chan Snapshot[models.UserProfile]
}

type IReading interface {
	CreateReading(ctx context.Context, input *models.GlucoseReading) (uint, error)
	GetReading(ctx context.Context, id uint) (*models.GlucoseReading, error)
	DeleteReading(ctx context.Context, id uint) error
	ListReadings(ctx context.Context) ([]models.GlucoseReading, error)
	ReadingsSince(ctx context.Context, since time.Time) ([]models.GlucoseReading, error)
	RecentReadings(ctx context.Context, limit int) ([]models.GlucoseReading, error)
	WatchReadings(ctx context.Context) <-chan Snapshot[models.GlucoseReading]
	WatchReadingsSince(ctx context.Context, since time.Time) <-chan Snapshot[models.GlucoseReading]
}

type IMedication interface {
	CreateMedication(ctx context.Context, input *models.Medication) (uint, error)
	AddMedication(ctx context.Context, input *models.Medication, times []TimeOfDay) (*models.Medication, error)
	UpdateMedication(ctx context.Context, input *models.Medication) error
	DeleteMedication(ctx context.Context, id uint) error
	GetMedication(ctx context.Context, id uint) (*models.Medication, error)
	ListActiveMedications(ctx context.Context) ([]models.Medication, error)
	ListMedications(ctx context.Context) ([]models.Medication, error)
	MedicationsWithSchedules(ctx context.Context) ([]models.Medication, error)
	ReminderTargets(ctx context.Context) ([]models.Medication, error)
	NextDoses(ctx context.Context, now time.Time) ([]NextDose, error)
	WatchActiveMedications(ctx context.Context) <-chan Snapshot[models.Medication]
	WatchMedications(ctx context.Context) <-chan Snapshot[models.Medication]
}

type ISchedule interface {
	CreateSchedule(ctx context.Context, input *models.MedicationSchedule) (uint, error)
	UpdateSchedule(ctx context.Context, input *models.MedicationSchedule) error
	DeleteSchedule(ctx context.Context, id uint) error
	GetSchedule(ctx context.Context, id uint) (*models.MedicationSchedule, error)
	SchedulesForMedication(ctx context.Context, medicationID uint) ([]models.MedicationSchedule, error)
	ActiveReminderSchedules(ctx context.Context) ([]models.MedicationSchedule, error)
	ReplaceSchedules(ctx context.Context, medicationID uint, times []TimeOfDay) ([]models.MedicationSchedule, error)
	WatchSchedulesForMedication(ctx context.Context, medicationID uint) <-chan Snapshot[models.MedicationSchedule]
}

type ILog interface {
	CreateLog(ctx context.Context, input *models.MedicationLog) (uint, error)
	UpdateLog(ctx context.Context, input *models.MedicationLog) error
	DeleteLog(ctx context.Context, id uint) error
	GetLog(ctx context.Context, id uint) (*models.MedicationLog, error)
	LogTaken(ctx context.Context, medicationID uint, notes string) (*models.MedicationLog, error)
	RecentLogs(ctx context.Context, limit int) ([]models.MedicationLog, error)
	LogsSince(ctx context.Context, since time.Time) ([]models.MedicationLog, error)
	LogsForMedicationOn(ctx context.Context, medicationID uint, day time.Time) ([]models.MedicationLog, error)
	WatchRecentLogs(ctx context.Context, limit int) <-chan Snapshot[models.MedicationLog]
	WatchLogsForMedication(ctx context.Context, medicationID uint) <-chan Snapshot[models.MedicationLog]
}

type IAnalysis interface {
	Summarize(ctx context.Context, window time.Duration) (*analytics.Summary, error)
}

// IReminder is the part of the reminder scheduler the data-access layer drives
// when schedules change.
type IReminder interface {
	ScheduleReminder(medication models.Medication, schedule models.MedicationSchedule)
	CancelReminder(scheduleID uint)
}

type Tracker struct {
	Db         *db.DB
	Clock      clockwork.Clock
	Profile    IProfile
	Reading    IReading
	Medication IMedication
	Schedule   ISchedule
	Log        ILog
	Analysis   IAnalysis
	Reminder   IReminder
}

type ServiceOpts struct {
	Profile    IProfile
	Reading    IReading
	Medication IMedication
	Schedule   ISchedule
	Log        ILog
	Analysis   IAnalysis
	Reminder   IReminder
}

// New wires the default services around a store. Replace any of them with
// WithServices.
func New(store *db.DB, clock clockwork.Clock) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	t := &Tracker{Db: store, Clock: clock}
	return t.WithServices(ServiceOpts{
		Profile:    t.GetIProfile(),
		Reading:    t.GetIReading(),
		Medication: t.GetIMedication(),
		Schedule:   t.GetISchedule(),
		Log:        t.GetILog(),
		Analysis:   t.GetIAnalysis(),
	})
}

func (t *Tracker) WithServices(opts ServiceOpts) *Tracker {
	if opts.Profile != nil {
		t.Profile = opts.Profile
	}
	if opts.Reading != nil {
		t.Reading = opts.Reading
	}
	if opts.Medication != nil {
		t.Medication = opts.Medication
	}
	if opts.Schedule != nil {
		t.Schedule = opts.Schedule
	}
	if opts.Log != nil {
		t.Log = opts.Log
	}
	if opts.Analysis != nil {
		t.Analysis = opts.Analysis
	}
	if opts.Reminder != nil {
		t.Reminder = opts.Reminder
	}
	return t
}

func (t *Tracker) now() time.Time {
	return t.Clock.Now()
}

// ReminderStore is the slice of the tracker the reminder scheduler needs:
// adherence writes and the list of schedules that should hold a timer.
type ReminderStore struct {
	tracker *Tracker
}

func (rs *ReminderStore) LogTaken(ctx context.Context, medicationID uint, notes string) (*models.MedicationLog, error) {
	return rs.tracker.Log.LogTaken(ctx, medicationID, notes)
}

func (rs *ReminderStore) ReminderTargets(ctx context.Context) ([]models.Medication, error) {
	return rs.tracker.Medication.ReminderTargets(ctx)
}

func (rs *ReminderStore) ReminderTarget(ctx context.Context, scheduleID uint) (*models.Medication, *models.MedicationSchedule, error) {
	schedule, err := rs.tracker.Schedule.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, nil, err
	}
	med, err := rs.tracker.Medication.GetMedication(ctx, schedule.MedicationID)
	if err != nil {
		return nil, nil, err
	}
	return med, schedule, nil
}

func (t *Tracker) GetReminderStore() *ReminderStore {
	return &ReminderStore{tracker: t}
}
