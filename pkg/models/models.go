package models

import "time"

// SchemaVersion is bumped whenever a table shape changes. A mismatch with the
// stored version drops and recreates every table.
const SchemaVersion = 3

type ReadingType string

const (
	ReadingTypeFasting    ReadingType = "FASTING"
	ReadingTypeBeforeMeal ReadingType = "BEFORE_MEAL"
	ReadingTypeAfterMeal  ReadingType = "AFTER_MEAL"
	ReadingTypeRandom     ReadingType = "RANDOM"
)

var ReadingTypes = []ReadingType{
	ReadingTypeFasting,
	ReadingTypeBeforeMeal,
	ReadingTypeAfterMeal,
	ReadingTypeRandom,
}

func (rt ReadingType) Valid() bool {
	for _, known := range ReadingTypes {
		if rt == known {
			return true
		}
	}
	return false
}

type UserProfile struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Username         string `gorm:"uniqueIndex;not null" json:"username"`
	Age              int    `json:"age"`
	TargetGlucoseMin int    `gorm:"not null" json:"target_glucose_min"`
	TargetGlucoseMax int    `gorm:"not null" json:"target_glucose_max"`
	IsActive         bool   `gorm:"not null;index" json:"is_active"`
}

type GlucoseReading struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	GlucoseLevel int         `gorm:"not null;check:glucose_level > 0" json:"glucose_level"`
	Timestamp    time.Time   `gorm:"not null;index" json:"timestamp"`
	Notes        string      `json:"notes"`
	ReadingType  ReadingType `gorm:"type:varchar(20);not null;check:reading_type IN ('FASTING','BEFORE_MEAL','AFTER_MEAL','RANDOM')" json:"reading_type"`
}

type Medication struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null;index" json:"name"`
	Dosage       string `gorm:"not null" json:"dosage"`
	Instructions string `json:"instructions"`
	IsActive     bool   `gorm:"not null" json:"is_active"`

	Schedules []MedicationSchedule `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"schedules,omitempty"`
	Logs      []MedicationLog      `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE" json:"-"`
}

type MedicationSchedule struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	MedicationID    uint `gorm:"not null;index" json:"medication_id"`
	TimeHour        int  `gorm:"not null;check:time_hour BETWEEN 0 AND 23" json:"time_hour"`
	TimeMinute      int  `gorm:"not null;check:time_minute BETWEEN 0 AND 59" json:"time_minute"`
	IsActive        bool `gorm:"not null" json:"is_active"`
	ReminderEnabled bool `gorm:"not null" json:"reminder_enabled"`
}

// Armable reports whether this schedule should hold a pending reminder.
func (s MedicationSchedule) Armable(med Medication) bool {
	return med.IsActive && s.IsActive && s.ReminderEnabled
}

type MedicationLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MedicationID  uint      `gorm:"not null;index" json:"medication_id"`
	ScheduledTime time.Time `gorm:"not null;index" json:"scheduled_time"`
	ActualTime    time.Time `json:"actual_time"`
	Taken         bool      `gorm:"not null" json:"taken"`
	Notes         string    `json:"notes"`
}

type SchemaInfo struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

// All lists the domain tables in dependency order, parents first.
func All() []any {
	return []any{
		&UserProfile{},
		&GlucoseReading{},
		&Medication{},
		&MedicationSchedule{},
		&MedicationLog{},
	}
}
