package tracker_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
	_ "liyu1981.xyz/glucose-tracker/pkg/testing"
	"liyu1981.xyz/glucose-tracker/pkg/tracker"
)

func timeOf(t *testing.T, s string) tracker.TimeOfDay {
	t.Helper()
	td, err := tracker.ParseTimeOfDay(s)
	require.NoError(t, err)
	return td
}

func TestAddMedicationArmsEverySchedule(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, mockIReminder := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), true)
	defer ctrl.Finish()
	ctx := context.Background()

	mockIReminder.
		EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any()).
		Do(func(med models.Medication, schedule models.MedicationSchedule) {
			assert.Equal(t, "Metformin", med.Name)
			assert.True(t, schedule.Armable(med))
		}).
		Times(2)

	med, err := trackerObj.Medication.AddMedication(ctx,
		&models.Medication{Name: "Metformin", Dosage: "500mg", Instructions: "with food"},
		[]tracker.TimeOfDay{timeOf(t, "20:00"), timeOf(t, "08:00")})
	require.NoError(t, err)
	assert.True(t, med.IsActive)
	require.Len(t, med.Schedules, 2)

	saved, err := trackerObj.Medication.GetMedication(ctx, med.ID)
	require.NoError(t, err)
	require.Len(t, saved.Schedules, 2)
	// ordered by time of day
	assert.Equal(t, 8, saved.Schedules[0].TimeHour)
	assert.Equal(t, 20, saved.Schedules[1].TimeHour)
	for _, s := range saved.Schedules {
		assert.True(t, s.IsActive)
		assert.True(t, s.ReminderEnabled)
	}
}

func TestAddMedicationRejectsDuplicateTimes(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, mockIReminder := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), true)
	defer ctrl.Finish()
	ctx := context.Background()

	mockIReminder.EXPECT().ScheduleReminder(gomock.Any(), gomock.Any()).Times(0)

	_, err := trackerObj.Medication.AddMedication(ctx,
		&models.Medication{Name: "Insulin", Dosage: "10u"},
		[]tracker.TimeOfDay{timeOf(t, "08:00"), timeOf(t, "08:00")})
	assert.ErrorIs(t, err, common.ErrDuplicateTime)

	_, err = trackerObj.Medication.AddMedication(ctx,
		&models.Medication{Name: "", Dosage: "10u"},
		[]tracker.TimeOfDay{timeOf(t, "08:00")})
	assert.True(t, common.IsErrorType(err, common.ErrorTypeValidation))

	meds, err := trackerObj.Medication.ListMedications(ctx)
	require.NoError(t, err)
	assert.Empty(t, meds)
}

func TestAddMedicationLogs(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl, trackerObj, _ := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), false)
	defer ctrl.Finish()

	_, err := trackerObj.Medication.AddMedication(context.Background(),
		&models.Medication{Name: "Aspirin", Dosage: "81mg"},
		[]tracker.TimeOfDay{timeOf(t, "09:00")})
	require.NoError(t, err)

	var found bool
	for _, entry := range ParseLogs(&buf) {
		m := entry.(map[string]any)
		if m["msg"] == "Medication saved with schedules" {
			found = true
			assert.Equal(t, common.LoggerCategoryMedication, m[common.LoggerFieldCategory])
			assert.EqualValues(t, 1, m["schedules"])
		}
	}
	assert.True(t, found, "expected a save log line")
}

func TestUpdateMedicationDeactivationCancelsReminders(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, mockIReminder := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), true)
	defer ctrl.Finish()
	ctx := context.Background()

	med := seedMedication(t, trackerObj, "Lisinopril", true)
	morning := seedSchedule(t, trackerObj, med.ID, 8, 0, true, true)
	evening := seedSchedule(t, trackerObj, med.ID, 20, 0, true, true)

	mockIReminder.EXPECT().ScheduleReminder(gomock.Any(), gomock.Any()).Times(0)
	mockIReminder.EXPECT().CancelReminder(morning.ID).Times(1)
	mockIReminder.EXPECT().CancelReminder(evening.ID).Times(1)

	med.IsActive = false
	require.NoError(t, trackerObj.Medication.UpdateMedication(ctx, &med))

	active, err := trackerObj.Medication.ListActiveMedications(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	ghost := models.Medication{ID: 4242, Name: "Ghost", Dosage: "1mg"}
	assert.ErrorIs(t, trackerObj.Medication.UpdateMedication(ctx, &ghost), common.ErrMedicationNotFound)
}

func TestDeleteMedicationCascades(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, mockIReminder := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), true)
	defer ctrl.Finish()
	ctx := context.Background()

	med := seedMedication(t, trackerObj, "Metformin", true)
	schedule := seedSchedule(t, trackerObj, med.ID, 8, 0, true, true)
	other := seedMedication(t, trackerObj, "Aspirin", true)
	seedSchedule(t, trackerObj, other.ID, 9, 0, true, true)

	_, err := trackerObj.Log.LogTaken(ctx, med.ID, "")
	require.NoError(t, err)
	_, err = trackerObj.Log.LogTaken(ctx, other.ID, "")
	require.NoError(t, err)

	mockIReminder.EXPECT().CancelReminder(schedule.ID).Times(1)

	require.NoError(t, trackerObj.Medication.DeleteMedication(ctx, med.ID))

	var schedules, logs int64
	require.NoError(t, trackerObj.Db.Conn.Model(&models.MedicationSchedule{}).Where("medication_id = ?", med.ID).Count(&schedules).Error)
	require.NoError(t, trackerObj.Db.Conn.Model(&models.MedicationLog{}).Where("medication_id = ?", med.ID).Count(&logs).Error)
	assert.Zero(t, schedules)
	assert.Zero(t, logs)

	// the other medication is untouched
	require.NoError(t, trackerObj.Db.Conn.Model(&models.MedicationLog{}).Count(&logs).Error)
	assert.EqualValues(t, 1, logs)

	_, err = trackerObj.Medication.GetMedication(ctx, med.ID)
	assert.ErrorIs(t, err, common.ErrMedicationNotFound)
	assert.ErrorIs(t, trackerObj.Medication.DeleteMedication(ctx, med.ID), common.ErrMedicationNotFound)
}

func TestReminderTargetsSkipDisabled(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _ := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), false)
	defer ctrl.Finish()
	ctx := context.Background()

	active := seedMedication(t, trackerObj, "Active", true)
	armed := seedSchedule(t, trackerObj, active.ID, 8, 0, true, true)
	seedSchedule(t, trackerObj, active.ID, 12, 0, true, false)
	seedSchedule(t, trackerObj, active.ID, 18, 0, false, true)

	paused := seedMedication(t, trackerObj, "Paused", false)
	seedSchedule(t, trackerObj, paused.ID, 9, 0, true, true)

	targets, err := trackerObj.Medication.ReminderTargets(ctx)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "Active", targets[0].Name)
	require.Len(t, targets[0].Schedules, 1)
	assert.Equal(t, armed.ID, targets[0].Schedules[0].ID)

	withSchedules, err := trackerObj.Medication.MedicationsWithSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, withSchedules, 2)
	assert.Len(t, withSchedules[0].Schedules, 3)
}

func TestNextDoses(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trackerObj, _ := GetMockTrackerWithMemorySqliteDialector(t, clockwork.NewFakeClockAt(testNow), false)
	defer ctrl.Finish()
	ctx := context.Background()

	evening := seedMedication(t, trackerObj, "Evening", true)
	seedSchedule(t, trackerObj, evening.ID, 9, 0, true, true)
	seedSchedule(t, trackerObj, evening.ID, 18, 0, true, true)

	morning := seedMedication(t, trackerObj, "Morning", true)
	seedSchedule(t, trackerObj, morning.ID, 8, 0, true, true)

	seedMedication(t, trackerObj, "Unscheduled", true)

	_, err := trackerObj.Log.LogTaken(ctx, evening.ID, "")
	require.NoError(t, err)

	doses, err := trackerObj.Medication.NextDoses(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, doses, 2)

	assert.Equal(t, "Evening", doses[0].Medication.Name)
	assert.True(t, doses[0].At.Equal(time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)))
	assert.True(t, doses[0].TakenToday)

	assert.Equal(t, "Morning", doses[1].Medication.Name)
	assert.True(t, doses[1].At.Equal(time.Date(2025, time.March, 11, 8, 0, 0, 0, time.UTC)))
	assert.False(t, doses[1].TakenToday)
}
