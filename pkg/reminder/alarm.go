package reminder

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

type armedJob struct {
	jobID        uuid.UUID
	medicationID uint
	at           time.Time
}

// GocronAlarms registers every reminder as a gocron one-time job named after
// its schedule id.
type GocronAlarms struct {
	scheduler gocron.Scheduler
	exact     bool

	mu   sync.Mutex
	jobs map[uint]*armedJob
}

func NewGocronAlarms(clock clockwork.Clock, exact bool) (*GocronAlarms, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &GocronAlarms{
		scheduler: scheduler,
		exact:     exact,
		jobs:      make(map[uint]*armedJob),
	}, nil
}

func alarmName(scheduleID uint) string {
	return fmt.Sprintf("reminder-%d", scheduleID)
}

func (a *GocronAlarms) CanScheduleExact() bool {
	return a.exact
}

func (a *GocronAlarms) Arm(fire Fire, onFire func(Fire)) error {
	logger := common.GetCategoryLogger(common.LoggerNameReminder, common.LoggerCategoryAlarm)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.removeLocked(fire.ScheduleID)

	// the task identifies its arming by entry, never by the job id that
	// NewJob has not returned yet
	entry := &armedJob{medicationID: fire.MedicationID, at: fire.Target}
	job, err := a.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(fire.Target)),
		gocron.NewTask(func() {
			if a.fired(fire.ScheduleID, entry) {
				onFire(fire)
			}
		}),
		gocron.WithName(alarmName(fire.ScheduleID)),
		gocron.WithTags(alarmName(fire.ScheduleID), fmt.Sprintf("medication-%d", fire.MedicationID)),
	)
	if err != nil {
		return fmt.Errorf("arm %s at %s: %w", alarmName(fire.ScheduleID), fire.Target, err)
	}
	entry.jobID = job.ID()
	a.jobs[fire.ScheduleID] = entry

	logger.Debug("Alarm armed", zap.Uint("schedule_id", fire.ScheduleID), zap.Time("at", fire.Target))
	return nil
}

// fired drops the registry entry of a job that went off. A job replaced while
// it was starting is stale and reports false.
func (a *GocronAlarms) fired(scheduleID uint, entry *armedJob) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	current, ok := a.jobs[scheduleID]
	if !ok || current != entry {
		return false
	}
	delete(a.jobs, scheduleID)
	return true
}

func (a *GocronAlarms) removeLocked(scheduleID uint) bool {
	current, ok := a.jobs[scheduleID]
	if !ok {
		return false
	}
	delete(a.jobs, scheduleID)
	if err := a.scheduler.RemoveJob(current.jobID); err != nil {
		// the one-time job already ran and removed itself
		common.GetCategoryLogger(common.LoggerNameReminder, common.LoggerCategoryAlarm).
			Debug("Remove alarm job", zap.Uint("schedule_id", scheduleID), zap.Error(err))
	}
	return true
}

func (a *GocronAlarms) Disarm(scheduleID uint) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.removeLocked(scheduleID)
}

func (a *GocronAlarms) DisarmAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for scheduleID := range a.jobs {
		a.removeLocked(scheduleID)
	}
}

func (a *GocronAlarms) Pending() []Alarm {
	a.mu.Lock()
	defer a.mu.Unlock()

	alarms := make([]Alarm, 0, len(a.jobs))
	for scheduleID, job := range a.jobs {
		alarms = append(alarms, Alarm{ScheduleID: scheduleID, MedicationID: job.medicationID, At: job.at})
	}
	sort.Slice(alarms, func(i, j int) bool {
		if alarms[i].At.Equal(alarms[j].At) {
			return alarms[i].ScheduleID < alarms[j].ScheduleID
		}
		return alarms[i].At.Before(alarms[j].At)
	})
	return alarms
}

func (a *GocronAlarms) Start() {
	a.scheduler.Start()
}

func (a *GocronAlarms) Shutdown() error {
	return a.scheduler.Shutdown()
}
