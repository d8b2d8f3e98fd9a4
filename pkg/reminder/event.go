package reminder

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

const (
	ActionFireReminder      = "FIRE_REMINDER"
	ActionMarkAsTaken       = "MARK_AS_TAKEN"
	ActionBootCompleted     = "BOOT_COMPLETED"
	ActionMyPackageReplaced = "MY_PACKAGE_REPLACED"

	ExtraScheduleID       = "schedule_id"
	ExtraMedicationID     = "medication_id"
	ExtraMedicationName   = "medication_name"
	ExtraMedicationDosage = "medication_dosage"
	ExtraTimeHour         = "time_hour"
	ExtraTimeMinute       = "time_minute"
	ExtraTargetTime       = "target_time"
)

// Event is an inbound message: a timer going off, a notification button, or a
// host lifecycle signal. Extras arrive either as Go values or decoded from
// JSON, where every number is a float64.
type Event struct {
	Action string         `json:"action"`
	Extras map[string]any `json:"extras,omitempty"`
}

func FireEvent(f Fire) Event {
	extras := map[string]any{
		ExtraScheduleID:       f.ScheduleID,
		ExtraMedicationID:     f.MedicationID,
		ExtraMedicationName:   f.Name,
		ExtraMedicationDosage: f.Dosage,
	}
	if f.hasClock() {
		extras[ExtraTimeHour] = f.Hour
		extras[ExtraTimeMinute] = f.Minute
	}
	if !f.Target.IsZero() {
		extras[ExtraTargetTime] = f.Target.UnixMilli()
	}
	return Event{Action: ActionFireReminder, Extras: extras}
}

func MarkAsTakenEvent(medicationID uint) Event {
	return Event{Action: ActionMarkAsTaken, Extras: map[string]any{ExtraMedicationID: medicationID}}
}

func BootEvent() Event {
	return Event{Action: ActionBootCompleted}
}

func malformed(format string, args ...any) error {
	return common.WithMessage(common.ErrMalformedEvent, fmt.Sprintf(format, args...))
}

func parseFire(extras map[string]any) (Fire, error) {
	fire := Fire{Hour: -1, Minute: -1}
	var ok bool

	if fire.MedicationID, ok = uintExtra(extras, ExtraMedicationID); !ok {
		return Fire{}, malformed("%s is missing or invalid", ExtraMedicationID)
	}
	if fire.ScheduleID, ok = uintExtra(extras, ExtraScheduleID); !ok {
		return Fire{}, malformed("%s is missing or invalid", ExtraScheduleID)
	}
	if fire.Name, ok = stringExtra(extras, ExtraMedicationName); !ok {
		return Fire{}, malformed("%s is missing", ExtraMedicationName)
	}
	if fire.Dosage, ok = stringExtra(extras, ExtraMedicationDosage); !ok {
		return Fire{}, malformed("%s is missing", ExtraMedicationDosage)
	}

	hour, hasHour := intExtra(extras, ExtraTimeHour)
	minute, hasMinute := intExtra(extras, ExtraTimeMinute)
	if hasHour && hasMinute {
		fire.Hour, fire.Minute = hour, minute
	}
	if millis, ok := intExtra(extras, ExtraTargetTime); ok && millis > 0 {
		fire.Target = time.UnixMilli(int64(millis))
	}
	return fire, nil
}

func parseMedicationID(extras map[string]any) (uint, error) {
	id, ok := uintExtra(extras, ExtraMedicationID)
	if !ok {
		return 0, malformed("%s is missing or invalid", ExtraMedicationID)
	}
	return id, nil
}

func stringExtra(extras map[string]any, key string) (string, bool) {
	s, ok := extras[key].(string)
	return s, ok && s != ""
}

func intExtra(extras map[string]any, key string) (int, bool) {
	switch v := extras[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// uintExtra accepts only positive ids.
func uintExtra(extras map[string]any, key string) (uint, bool) {
	n, ok := intExtra(extras, key)
	if !ok || n <= 0 {
		return 0, false
	}
	return uint(n), true
}
