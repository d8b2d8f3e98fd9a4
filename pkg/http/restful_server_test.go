package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	_ "liyu1981.xyz/glucose-tracker/pkg/testing"

	"liyu1981.xyz/glucose-tracker/pkg/analytics"
	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/db"
	"liyu1981.xyz/glucose-tracker/pkg/models"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
	"liyu1981.xyz/glucose-tracker/pkg/tracker"
)

// monday 14:00 UTC
var testNow = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

func setupTestServer(t *testing.T, notifications bool) *RestfulServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := db.Open(db.UseMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clock := clockwork.NewFakeClockAt(testNow)
	trackerObj := tracker.New(store, clock)

	alarms, err := reminder.NewGocronAlarms(clock, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = alarms.Shutdown() })

	notifier := reminder.NewDesktopNotifier(clock, notifications).WithSender(func(string, string) error { return nil })
	manager := reminder.NewManager(alarms, notifier, trackerObj.GetReminderStore(), clock, time.UTC)
	trackerObj.WithServices(tracker.ServiceOpts{Reminder: manager})

	dispatcher := reminder.NewDispatcher(manager, 8)
	manager.WithDispatcher(dispatcher)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go dispatcher.Run(ctx)

	rs := &RestfulServer{
		Server:     gin.New(),
		Tracker:    trackerObj,
		Reminders:  manager,
		Dispatcher: dispatcher,
		// no limiter by default, tests that need one assign rs.Limiter
	}
	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t, true)

	w := doJSON(rs, "GET", "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProfileFlow(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	w := doJSON(rs, "POST", "/profiles", gin.H{"username": "alice", "age": 40, "target_glucose_min": 70, "target_glucose_max": 180})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	alice := decode[models.UserProfile](t, w)
	assert.True(t, alice.IsActive)

	w = doJSON(rs, "POST", "/profiles", gin.H{"username": "bob", "target_glucose_min": 80, "target_glucose_max": 160})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(rs, "GET", "/profiles/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", decode[models.UserProfile](t, w).Username)

	w = doJSON(rs, "GET", "/profiles/exists?username=alice", nil)
	assert.JSONEq(t, `{"exists":true}`, w.Body.String())
	w = doJSON(rs, "GET", "/profiles/exists?username=carol", nil)
	assert.JSONEq(t, `{"exists":false}`, w.Body.String())

	w = doJSON(rs, "POST", "/profiles/login", gin.H{"username": "alice"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, alice.ID, decode[models.UserProfile](t, w).ID)

	w = doJSON(rs, "POST", "/profiles/login", gin.H{"username": "carol"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "PUT", fmt.Sprintf("/profiles/%d", alice.ID), gin.H{"username": "alice", "age": 41, "target_glucose_min": 75, "target_glucose_max": 170})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.UserProfile](t, w)
	assert.Equal(t, 41, updated.Age)
	assert.Equal(t, 75, updated.TargetGlucoseMin)
	assert.True(t, updated.IsActive)

	w = doJSON(rs, "GET", "/profiles", nil)
	assert.Len(t, decode[[]models.UserProfile](t, w), 2)

	w = doJSON(rs, "POST", "/profiles/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(rs, "GET", "/profiles/active", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "DELETE", "/profiles", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(rs, "GET", "/profiles", nil)
	assert.Empty(t, decode[[]models.UserProfile](t, w))
}

func TestProfile_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	{
		// missing username
		w := doJSON(rs, "POST", "/profiles", gin.H{"target_glucose_min": 70, "target_glucose_max": 180})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// inverted range passes the schema and fails in the tracker
		w := doJSON(rs, "POST", "/profiles", gin.H{"username": "alice", "target_glucose_min": 180, "target_glucose_max": 70})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PROFILE", decode[map[string]any](t, w)["code"])
	}

	{
		w := doJSON(rs, "POST", "/profiles", gin.H{"username": "alice", "target_glucose_min": 70, "target_glucose_max": 180})
		require.Equal(t, http.StatusCreated, w.Code)
		w = doJSON(rs, "POST", "/profiles", gin.H{"username": "alice", "target_glucose_min": 70, "target_glucose_max": 180})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, common.ErrUsernameTaken.Code, decode[map[string]any](t, w)["code"])

		// renaming onto an existing username is rejected the same way
		w = doJSON(rs, "POST", "/profiles", gin.H{"username": "bob", "target_glucose_min": 70, "target_glucose_max": 180})
		require.Equal(t, http.StatusCreated, w.Code)
		bob := decode[models.UserProfile](t, w)
		w = doJSON(rs, "PUT", fmt.Sprintf("/profiles/%d", bob.ID), gin.H{"username": "alice", "target_glucose_min": 70, "target_glucose_max": 180})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, common.ErrUsernameTaken.Code, decode[map[string]any](t, w)["code"])
	}

	{
		w := doJSON(rs, "PUT", "/profiles/999", gin.H{"username": "ghost", "target_glucose_min": 70, "target_glucose_max": 180})
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		w := doJSON(rs, "PUT", "/profiles/abc", gin.H{"username": "ghost", "target_glucose_min": 70, "target_glucose_max": 180})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		w := doJSON(rs, "GET", "/profiles/exists", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestReadings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	w := doJSON(rs, "POST", "/readings", gin.H{"glucose_level": 120, "notes": "after lunch", "reading_type": "AFTER_MEAL"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode[models.GlucoseReading](t, w)
	assert.Equal(t, models.ReadingTypeAfterMeal, first.ReadingType)
	assert.True(t, first.Timestamp.Equal(testNow))

	earlier := testNow.Add(-48 * time.Hour)
	w = doJSON(rs, "POST", "/readings", gin.H{"glucose_level": 95, "timestamp": earlier})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	second := decode[models.GlucoseReading](t, w)
	assert.Equal(t, models.ReadingTypeRandom, second.ReadingType)

	w = doJSON(rs, "GET", "/readings", nil)
	assert.Len(t, decode[[]models.GlucoseReading](t, w), 2)

	since := testNow.Add(-time.Hour).Format(time.RFC3339)
	w = doJSON(rs, "GET", "/readings?since="+since, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recent := decode[[]models.GlucoseReading](t, w)
	require.Len(t, recent, 1)
	assert.Equal(t, first.ID, recent[0].ID)

	w = doJSON(rs, "GET", "/readings/recent?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.GlucoseReading](t, w), 1)

	w = doJSON(rs, "GET", fmt.Sprintf("/readings/%d", second.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 95, decode[models.GlucoseReading](t, w).GlucoseLevel)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/readings/%d", second.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(rs, "GET", fmt.Sprintf("/readings/%d", second.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadings_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "zero level", body: gin.H{"glucose_level": 0}},
		{name: "negative level", body: gin.H{"glucose_level": -5}},
		{name: "missing level", body: gin.H{"notes": "forgot"}},
		{name: "unknown type", body: gin.H{"glucose_level": 100, "reading_type": "LUNCH"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(rs, "POST", "/readings", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w := doJSON(rs, "GET", "/readings?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "GET", "/readings/recent?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "DELETE", "/readings/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMedicationLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	w := doJSON(rs, "POST", "/medications", gin.H{"name": "Metformin", "dosage": "500mg", "instructions": "with food", "times": []string{"20:00", "08:00"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	med := decode[models.Medication](t, w)
	assert.True(t, med.IsActive)
	require.Len(t, med.Schedules, 2)

	assert.Len(t, rs.Reminders.Pending(), 2)

	w = doJSON(rs, "GET", "/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[struct {
		Pending []reminder.Alarm `json:"pending"`
	}](t, w)
	assert.Len(t, listed.Pending, 2)

	// turn one reminder off
	scheduleID := med.Schedules[0].ID
	w = doJSON(rs, "PATCH", fmt.Sprintf("/schedules/%d", scheduleID), gin.H{"reminder_enabled": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode[models.MedicationSchedule](t, w)
	assert.False(t, patched.ReminderEnabled)
	assert.True(t, patched.IsActive)
	assert.Len(t, rs.Reminders.Pending(), 1)

	// move it and turn it back on
	w = doJSON(rs, "PATCH", fmt.Sprintf("/schedules/%d", scheduleID), gin.H{"reminder_enabled": true, "time": "21:15"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched = decode[models.MedicationSchedule](t, w)
	assert.Equal(t, 21, patched.TimeHour)
	assert.Equal(t, 15, patched.TimeMinute)
	assert.Len(t, rs.Reminders.Pending(), 2)

	w = doJSON(rs, "PUT", fmt.Sprintf("/medications/%d/schedules", med.ID), gin.H{"times": []string{"07:30"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[[]models.MedicationSchedule](t, w), 1)
	pending := rs.Reminders.Pending()
	require.Len(t, pending, 1)
	assert.True(t, pending[0].At.Equal(time.Date(2025, time.March, 11, 7, 30, 0, 0, time.UTC)))

	// pausing disarms everything
	w = doJSON(rs, "PUT", fmt.Sprintf("/medications/%d", med.ID), gin.H{"name": "Metformin XR", "dosage": "750mg", "is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	paused := decode[models.Medication](t, w)
	assert.Equal(t, "Metformin XR", paused.Name)
	assert.False(t, paused.IsActive)
	assert.Empty(t, rs.Reminders.Pending())

	w = doJSON(rs, "GET", "/medications", nil)
	assert.Empty(t, decode[[]models.Medication](t, w))
	w = doJSON(rs, "GET", "/medications?all=true", nil)
	assert.Len(t, decode[[]models.Medication](t, w), 1)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/medications/%d", med.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(rs, "GET", fmt.Sprintf("/medications/%d", med.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMedication_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing name", body: gin.H{"dosage": "5mg"}},
		{name: "blank dosage", body: gin.H{"name": "Aspirin", "dosage": "  "}},
		{name: "not a clock", body: gin.H{"name": "Aspirin", "dosage": "81mg", "times": []string{"8am"}}},
		{name: "hour out of range", body: gin.H{"name": "Aspirin", "dosage": "81mg", "times": []string{"25:00"}}},
		{name: "duplicate times", body: gin.H{"name": "Aspirin", "dosage": "81mg", "times": []string{"08:00", "8:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(rs, "POST", "/medications", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w := doJSON(rs, "GET", "/medications", nil)
	assert.Empty(t, decode[[]models.Medication](t, w))
	assert.Empty(t, rs.Reminders.Pending())

	w = doJSON(rs, "PUT", "/medications/77/schedules", gin.H{"times": []string{"09:00"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "PATCH", "/schedules/77", gin.H{"is_active": false})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "POST", "/medications/77/taken", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTakenLogsAndNextDoses(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	w := doJSON(rs, "POST", "/medications", gin.H{"name": "Metformin", "dosage": "500mg", "times": []string{"09:00", "18:00"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	med := decode[models.Medication](t, w)

	w = doJSON(rs, "GET", "/medications/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doses := decode[[]tracker.NextDose](t, w)
	require.Len(t, doses, 1)
	assert.True(t, doses[0].At.Equal(time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)))
	assert.False(t, doses[0].TakenToday)

	w = doJSON(rs, "POST", fmt.Sprintf("/medications/%d/taken", med.ID), gin.H{"notes": "with breakfast"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entry := decode[models.MedicationLog](t, w)
	assert.True(t, entry.Taken)
	assert.Equal(t, "with breakfast", entry.Notes)

	// no dedup, a second press is a second row
	w = doJSON(rs, "POST", fmt.Sprintf("/medications/%d/taken", med.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(rs, "GET", fmt.Sprintf("/medications/%d/logs", med.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.MedicationLog](t, w), 2)

	yesterday := testNow.AddDate(0, 0, -1).Format(time.RFC3339)
	w = doJSON(rs, "GET", fmt.Sprintf("/medications/%d/logs?day=%s", med.ID, yesterday), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.MedicationLog](t, w))

	w = doJSON(rs, "GET", "/logs/recent?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.MedicationLog](t, w), 1)

	w = doJSON(rs, "GET", "/medications/next", nil)
	doses = decode[[]tracker.NextDose](t, w)
	require.Len(t, doses, 1)
	assert.True(t, doses[0].TakenToday)
}

func TestAnalysis(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	w := doJSON(rs, "GET", "/analysis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "no active profile")

	w = doJSON(rs, "POST", "/profiles", gin.H{"username": "alice", "target_glucose_min": 70, "target_glucose_max": 180})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, level := range []int{50, 100, 150, 200} {
		w = doJSON(rs, "POST", "/readings", gin.H{"glucose_level": level})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	// outside a one week window
	w = doJSON(rs, "POST", "/readings", gin.H{"glucose_level": 300, "timestamp": testNow.AddDate(0, 0, -10)})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(rs, "GET", "/analysis?days=7", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[analytics.Summary](t, w)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 125, summary.Average)
	assert.Equal(t, 1, summary.BelowCount)
	assert.Equal(t, 2, summary.InRangeCount)
	assert.Equal(t, 1, summary.AboveCount)
	assert.Equal(t, 50, summary.InRangePercentage)
	assert.Contains(t, summary.Insights, analytics.InsightLogMore)

	w = doJSON(rs, "GET", "/analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[analytics.Summary](t, w).Total)

	w = doJSON(rs, "GET", "/analysis?days=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptionalQueryDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	for i := range 12 {
		w := doJSON(rs, "POST", "/readings", gin.H{"glucose_level": 90 + i})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(rs, "POST", "/medications", gin.H{"name": "Metformin", "dosage": "500mg", "times": []string{"09:00"}})
	require.Equal(t, http.StatusCreated, w.Code)
	med := decode[models.Medication](t, w)
	for range 22 {
		w = doJSON(rs, "POST", fmt.Sprintf("/medications/%d/taken", med.ID), nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	tests := []struct {
		path     string
		expected int
	}{
		{path: "/readings/recent", expected: 10},
		{path: "/readings/recent?limit=", expected: 10},
		{path: "/readings/recent?limit=3", expected: 3},
		{path: "/logs/recent", expected: 20},
		{path: "/logs/recent?limit=%20", expected: 20},
		{path: "/logs/recent?limit=21", expected: 21},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doJSON(rs, "GET", tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Len(t, decode[[]map[string]any](t, w), tt.expected)
		})
	}

	for _, path := range []string{"/readings/recent?limit=ten", "/logs/recent?limit=501", "/analysis?days=366"} {
		w = doJSON(rs, "GET", path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	// a blank days value still means the default window, here with no profile yet
	w = doJSON(rs, "GET", "/analysis?days=", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReminderEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)

	w := doJSON(rs, "POST", "/medications", gin.H{"name": "Metformin", "dosage": "500mg", "times": []string{"09:00"}})
	require.Equal(t, http.StatusCreated, w.Code)

	rs.Reminders.CancelReminder(decode[models.Medication](t, w).Schedules[0].ID)
	require.Empty(t, rs.Reminders.Pending())

	w = doJSON(rs, "POST", "/reminders/rebuild", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[map[string]any](t, w)["event_id"])
	assert.Len(t, rs.Reminders.Pending(), 1)

	w = doJSON(rs, "POST", "/reminders/test", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "GET", "/reminders", nil)
	listed := decode[struct {
		Notifications []reminder.Notification `json:"notifications"`
	}](t, w)
	require.Len(t, listed.Notifications, 1)
	assert.Equal(t, reminder.TestMedicationID, listed.Notifications[0].ID)
}

func TestReminderEndpoints_NotificationsDenied(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, false)

	w := doJSON(rs, "POST", "/reminders/test", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, common.ErrNotificationsDenied.Code, decode[map[string]any](t, w)["code"])

	rs.Reminders = nil
	rs.Dispatcher = nil
	w = doJSON(rs, "POST", "/reminders/rebuild", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(rs, "GET", "/reminders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)
	rs.Limiter = common.NewClientLimiter(rate.Limit(0.001), 2, clockwork.NewFakeClockAt(testNow))

	send := func(remote string) int {
		req := httptest.NewRequest("GET", "/readings", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.1:4000"))
	assert.Equal(t, http.StatusOK, send("192.0.2.1:4001"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:4002"))

	// buckets are per client
	assert.Equal(t, http.StatusOK, send("192.0.2.2:4000"))

	// a trusted client gets a bigger bucket
	rs.PinClient("192.0.2.1", 1000, 1000)
	assert.Equal(t, http.StatusOK, send("192.0.2.1:4003"))

	// health checks are never limited
	for range 5 {
		req := httptest.NewRequest("GET", "/healthz", nil)
		req.RemoteAddr = "192.0.2.3:4000"
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

type sseEvent struct {
	name string
	data string
}

func readEvents(scanner *bufio.Scanner, out chan<- sseEvent) {
	defer close(out)
	var current sseEvent
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			current.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			current.data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "" && current.name != "":
			out <- current
			current = sseEvent{}
		}
	}
}

func nextEvent(t *testing.T, events <-chan sseEvent) sseEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "stream closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
		return sseEvent{}
	}
}

// waitForEvent skips events until one matches. A single change can surface
// as several snapshots.
func waitForEvent(t *testing.T, events <-chan sseEvent, match func(sseEvent) bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "stream closed")
			if match(ev) {
				return
			}
		case <-deadline:
			t.Fatal("no matching event received")
		}
	}
}

func TestLiveMedications(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)
	server := httptest.NewServer(rs.Server)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", server.URL+"/live/medications", nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan sseEvent, 8)
	go readEvents(bufio.NewScanner(resp.Body), events)

	first := nextEvent(t, events)
	assert.Equal(t, "medications", first.name)
	assert.Equal(t, "[]", first.data)

	w := doJSON(rs, "POST", "/medications", gin.H{"name": "Metformin", "dosage": "500mg", "times": []string{"08:00"}})
	require.Equal(t, http.StatusCreated, w.Code)

	waitForEvent(t, events, func(ev sseEvent) bool {
		return ev.name == "medications" && strings.Contains(ev.data, "Metformin")
	})
}

func TestLiveProfileAndReadings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t, true)
	server := httptest.NewServer(rs.Server)
	t.Cleanup(server.Close)

	open := func(path string) <-chan sseEvent {
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)
		req, err := http.NewRequestWithContext(ctx, "GET", server.URL+path, nil)
		require.NoError(t, err)
		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })

		events := make(chan sseEvent, 8)
		go readEvents(bufio.NewScanner(resp.Body), events)
		return events
	}

	profiles := open("/live/profile")
	readings := open("/live/readings")

	assert.Equal(t, "[]", nextEvent(t, profiles).data)
	assert.Equal(t, "[]", nextEvent(t, readings).data)

	w := doJSON(rs, "POST", "/profiles", gin.H{"username": "alice", "target_glucose_min": 70, "target_glucose_max": 180})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(rs, "POST", "/readings", gin.H{"glucose_level": 111})
	require.Equal(t, http.StatusCreated, w.Code)

	waitForEvent(t, profiles, func(ev sseEvent) bool { return strings.Contains(ev.data, "alice") })
	waitForEvent(t, readings, func(ev sseEvent) bool { return strings.Contains(ev.data, "111") })
}
