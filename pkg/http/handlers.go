package http

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
	"liyu1981.xyz/glucose-tracker/pkg/tracker"
)

func validationErr(issues any) error {
	return common.NewError(common.ErrorTypeValidation, "INVALID_REQUEST", fmt.Sprintf("validation error: %v", issues))
}

var idSchema = z.Int().GTE(1).Required()

func paramID(c *gin.Context) (uint, error) {
	var id int
	if issues := idSchema.Parse(c.Param("id"), &id); issues != nil {
		return 0, common.NewError(common.ErrorTypeValidation, "INVALID_ID", fmt.Sprintf("invalid id %q", c.Param("id")))
	}
	return uint(id), nil
}

const (
	defaultRecentReadings = 10
	defaultRecentLogs     = 20
	defaultAnalysisDays   = 30
)

var (
	limitSchema = z.Int().GTE(1).LTE(500)
	daysSchema  = z.Int().GTE(1).LTE(365)
)

// queryInt reads an optional integer query value. An absent or blank value
// takes fallback without being parsed.
func queryInt(c *gin.Context, key string, schema *z.NumberSchema[int], fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	var n int
	if issues := schema.Parse(raw, &n); issues != nil {
		return 0, validationErr(issues)
	}
	return n, nil
}

func queryLimit(c *gin.Context, fallback int) (int, error) {
	return queryInt(c, "limit", limitSchema, fallback)
}

var timeSchema = z.Time()

// queryTime reads an RFC 3339 query value. Missing values are the zero time.
func queryTime(c *gin.Context, key string) (time.Time, error) {
	var ts time.Time
	raw := c.Query(key)
	if raw == "" {
		return ts, nil
	}
	if issues := timeSchema.Parse(raw, &ts); issues != nil {
		return ts, common.NewError(common.ErrorTypeValidation, "INVALID_TIME", fmt.Sprintf("%s must be an RFC 3339 time, got %q", key, raw))
	}
	return ts, nil
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ProfileRequest struct {
	Username         string `json:"username" zog:"username"`
	Age              int    `json:"age" zog:"age"`
	TargetGlucoseMin int    `json:"target_glucose_min" zog:"target_glucose_min"`
	TargetGlucoseMax int    `json:"target_glucose_max" zog:"target_glucose_max"`
}

var profileRequestSchema = z.Struct(z.Shape{
	"Username":         z.String().Trim().Min(1).Required(),
	"Age":              z.Int().GTE(0).LTE(150),
	"TargetGlucoseMin": z.Int().GT(0).Required(),
	"TargetGlucoseMax": z.Int().GT(0).Required(),
})

func (req ProfileRequest) model() *models.UserProfile {
	return &models.UserProfile{
		Username:         req.Username,
		Age:              req.Age,
		TargetGlucoseMin: req.TargetGlucoseMin,
		TargetGlucoseMax: req.TargetGlucoseMax,
	}
}

func (rs *RestfulServer) CreateProfile(c *gin.Context) {
	var req ProfileRequest
	if issues := profileRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	ctx := c.Request.Context()
	id, err := rs.Tracker.Profile.CreateProfile(ctx, req.model())
	if err != nil {
		abortWithError(c, err)
		return
	}

	profile, err := rs.Tracker.Profile.GetProfile(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (rs *RestfulServer) ListProfiles(c *gin.Context) {
	profiles, err := rs.Tracker.Profile.ListProfiles(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (rs *RestfulServer) GetActiveProfile(c *gin.Context) {
	profile, err := rs.Tracker.Profile.GetActiveProfile(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (rs *RestfulServer) UpdateProfile(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req ProfileRequest
	if issues := profileRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	ctx := c.Request.Context()
	profile := req.model()
	profile.ID = id
	if err := rs.Tracker.Profile.UpdateProfile(ctx, profile); err != nil {
		abortWithError(c, err)
		return
	}

	updated, err := rs.Tracker.Profile.GetProfile(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

var usernameSchema = z.String().Trim().Min(1).Required()

func (rs *RestfulServer) UserExists(c *gin.Context) {
	var username string
	if issues := usernameSchema.Parse(c.Query("username"), &username); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	exists, err := rs.Tracker.Profile.UserExists(c.Request.Context(), username)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

type LoginRequest struct {
	Username string `json:"username" zog:"username"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Trim().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if issues := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	ctx := c.Request.Context()
	if err := rs.Tracker.Profile.SetActiveUser(ctx, req.Username); err != nil {
		abortWithError(c, err)
		return
	}

	profile, err := rs.Tracker.Profile.GetActiveProfile(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if err := rs.Tracker.Profile.Logout(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) ClearUserData(c *gin.Context) {
	if err := rs.Tracker.Profile.ClearUserData(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ReadingRequest struct {
	GlucoseLevel int       `json:"glucose_level" zog:"glucose_level"`
	Timestamp    time.Time `json:"timestamp" zog:"timestamp"`
	Notes        string    `json:"notes" zog:"notes"`
	ReadingType  string    `json:"reading_type" zog:"reading_type"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"GlucoseLevel": z.Int().GT(0).Required(),
	"Timestamp":    z.Time(),
	"Notes":        z.String().Trim(),
	"ReadingType": z.String().OneOf(common.Mapper(models.ReadingTypes, func(rt models.ReadingType) string {
		return string(rt)
	})),
})

func (rs *RestfulServer) CreateReading(c *gin.Context) {
	var req ReadingRequest
	if issues := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	ctx := c.Request.Context()
	id, err := rs.Tracker.Reading.CreateReading(ctx, &models.GlucoseReading{
		GlucoseLevel: req.GlucoseLevel,
		Timestamp:    req.Timestamp,
		Notes:        req.Notes,
		ReadingType:  models.ReadingType(req.ReadingType),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	reading, err := rs.Tracker.Reading.GetReading(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reading)
}

func (rs *RestfulServer) ListReadings(c *gin.Context) {
	since, err := queryTime(c, "since")
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	var readings []models.GlucoseReading
	if since.IsZero() {
		readings, err = rs.Tracker.Reading.ListReadings(ctx)
	} else {
		readings, err = rs.Tracker.Reading.ReadingsSince(ctx, since)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) RecentReadings(c *gin.Context) {
	limit, err := queryLimit(c, defaultRecentReadings)
	if err != nil {
		abortWithError(c, err)
		return
	}

	readings, err := rs.Tracker.Reading.RecentReadings(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetReading(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reading, err := rs.Tracker.Reading.GetReading(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

func (rs *RestfulServer) DeleteReading(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := rs.Tracker.Reading.DeleteReading(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

func parseTimes(raw []string) ([]tracker.TimeOfDay, error) {
	times := make([]tracker.TimeOfDay, 0, len(raw))
	for _, s := range raw {
		td, err := tracker.ParseTimeOfDay(s)
		if err != nil {
			return nil, err
		}
		times = append(times, td)
	}
	return times, nil
}

type MedicationRequest struct {
	Name         string   `json:"name" zog:"name"`
	Dosage       string   `json:"dosage" zog:"dosage"`
	Instructions string   `json:"instructions" zog:"instructions"`
	Times        []string `json:"times" zog:"times"`
}

var medicationRequestSchema = z.Struct(z.Shape{
	"Name":         z.String().Trim().Min(1).Required(),
	"Dosage":       z.String().Trim().Min(1).Required(),
	"Instructions": z.String().Trim(),
	"Times":        z.Slice(z.String().Trim().Match(clockPattern)),
})

func (rs *RestfulServer) AddMedication(c *gin.Context) {
	var req MedicationRequest
	if issues := medicationRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	times, err := parseTimes(req.Times)
	if err != nil {
		abortWithError(c, err)
		return
	}

	med, err := rs.Tracker.Medication.AddMedication(c.Request.Context(), &models.Medication{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	}, times)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, med)
}

func (rs *RestfulServer) ListMedications(c *gin.Context) {
	ctx := c.Request.Context()

	var meds []models.Medication
	var err error
	if strings.EqualFold(c.Query("all"), "true") {
		meds, err = rs.Tracker.Medication.MedicationsWithSchedules(ctx)
	} else {
		meds, err = rs.Tracker.Medication.ListActiveMedications(ctx)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, meds)
}

func (rs *RestfulServer) GetMedication(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	med, err := rs.Tracker.Medication.GetMedication(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, med)
}

type UpdateMedicationRequest struct {
	Name         string `json:"name" zog:"name"`
	Dosage       string `json:"dosage" zog:"dosage"`
	Instructions string `json:"instructions" zog:"instructions"`
	IsActive     *bool  `json:"is_active" zog:"is_active"`
}

var updateMedicationRequestSchema = z.Struct(z.Shape{
	"Name":         z.String().Trim().Min(1).Required(),
	"Dosage":       z.String().Trim().Min(1).Required(),
	"Instructions": z.String().Trim(),
	"IsActive":     z.Ptr(z.Bool()),
})

func (rs *RestfulServer) UpdateMedication(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req UpdateMedicationRequest
	if issues := updateMedicationRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	ctx := c.Request.Context()
	med, err := rs.Tracker.Medication.GetMedication(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	med.Name = req.Name
	med.Dosage = req.Dosage
	med.Instructions = req.Instructions
	if req.IsActive != nil {
		med.IsActive = *req.IsActive
	}
	if err := rs.Tracker.Medication.UpdateMedication(ctx, med); err != nil {
		abortWithError(c, err)
		return
	}

	updated, err := rs.Tracker.Medication.GetMedication(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rs *RestfulServer) DeleteMedication(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := rs.Tracker.Medication.DeleteMedication(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type SchedulesRequest struct {
	Times []string `json:"times" zog:"times"`
}

var schedulesRequestSchema = z.Struct(z.Shape{
	"Times": z.Slice(z.String().Trim().Match(clockPattern)).Required(),
})

func (rs *RestfulServer) ReplaceSchedules(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req SchedulesRequest
	if issues := schedulesRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	times, err := parseTimes(req.Times)
	if err != nil {
		abortWithError(c, err)
		return
	}

	schedules, err := rs.Tracker.Schedule.ReplaceSchedules(c.Request.Context(), id, times)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

type SchedulePatchRequest struct {
	Time            *string `json:"time" zog:"time"`
	IsActive        *bool   `json:"is_active" zog:"is_active"`
	ReminderEnabled *bool   `json:"reminder_enabled" zog:"reminder_enabled"`
}

var schedulePatchRequestSchema = z.Struct(z.Shape{
	"Time":            z.Ptr(z.String().Trim().Match(clockPattern)),
	"IsActive":        z.Ptr(z.Bool()),
	"ReminderEnabled": z.Ptr(z.Bool()),
})

func (rs *RestfulServer) PatchSchedule(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req SchedulePatchRequest
	if issues := schedulePatchRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		abortWithError(c, validationErr(issues))
		return
	}

	ctx := c.Request.Context()
	schedule, err := rs.Tracker.Schedule.GetSchedule(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if req.Time != nil {
		td, err := tracker.ParseTimeOfDay(*req.Time)
		if err != nil {
			abortWithError(c, err)
			return
		}
		schedule.TimeHour, schedule.TimeMinute = td.Hour, td.Minute
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	if req.ReminderEnabled != nil {
		schedule.ReminderEnabled = *req.ReminderEnabled
	}

	if err := rs.Tracker.Schedule.UpdateSchedule(ctx, schedule); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

type TakenRequest struct {
	Notes string `json:"notes" zog:"notes"`
}

var takenRequestSchema = z.Struct(z.Shape{
	"Notes": z.String().Trim(),
})

func (rs *RestfulServer) MarkTaken(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req TakenRequest
	if c.Request.ContentLength > 0 {
		if issues := takenRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
			abortWithError(c, validationErr(issues))
			return
		}
	}

	entry, err := rs.Tracker.Log.LogTaken(c.Request.Context(), id, req.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (rs *RestfulServer) MedicationLogs(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	day, err := queryTime(c, "day")
	if err != nil {
		abortWithError(c, err)
		return
	}
	if day.IsZero() {
		day = rs.Tracker.Clock.Now()
	}

	ctx := c.Request.Context()
	if _, err := rs.Tracker.Medication.GetMedication(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}

	logs, err := rs.Tracker.Log.LogsForMedicationOn(ctx, id, day)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (rs *RestfulServer) NextDoses(c *gin.Context) {
	doses, err := rs.Tracker.Medication.NextDoses(c.Request.Context(), rs.Tracker.Clock.Now())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doses)
}

func (rs *RestfulServer) RecentLogs(c *gin.Context) {
	limit, err := queryLimit(c, defaultRecentLogs)
	if err != nil {
		abortWithError(c, err)
		return
	}

	logs, err := rs.Tracker.Log.RecentLogs(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (rs *RestfulServer) Analysis(c *gin.Context) {
	days, err := queryInt(c, "days", daysSchema, defaultAnalysisDays)
	if err != nil {
		abortWithError(c, err)
		return
	}

	summary, err := rs.Tracker.Analysis.Summarize(c.Request.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
