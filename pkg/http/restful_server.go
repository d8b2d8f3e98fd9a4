package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
	"liyu1981.xyz/glucose-tracker/pkg/tracker"
)

type RestfulServer struct {
	Server     *gin.Engine
	Tracker    *tracker.Tracker
	Reminders  *reminder.Manager
	Dispatcher *reminder.Dispatcher
	Limiter    *common.ClientLimiter
}

// PinClient gives a trusted client, e.g. the local UI, its own rate.
func (rs *RestfulServer) PinClient(client string, clientRate float64, clientBurst int) {
	rs.Limiter.Pin(client, rate.Limit(clientRate), clientBurst)
}

// RateLimit rejects a client that exceeded its token bucket. Clients are
// keyed by remote IP.
func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.Limiter.Allow(c.ClientIP()) {
			abortWithError(c, common.ErrRateLimited)
			return
		}
		c.Next()
	}
}

func statusFor(err error) int {
	switch common.ErrorTypeOf(err) {
	case common.ErrorTypeValidation, common.ErrorTypeMalformedEvent:
		return http.StatusBadRequest
	case common.ErrorTypeNotFound:
		return http.StatusNotFound
	case common.ErrorTypePermission:
		return http.StatusForbidden
	case common.ErrorTypeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		common.LogError(common.GetLoggerWith(common.LoggerNameRestfulServer, zap.String("path", c.FullPath())), "Request failed", err)
	}

	body := gin.H{"error": err.Error()}
	if appErr, ok := err.(*common.AppError); ok {
		body["error"] = appErr.Message
		body["code"] = appErr.Code
	}
	c.AbortWithStatusJSON(status, body)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/", rs.RateLimit())

	profiles := api.Group("/profiles")
	{
		profiles.POST("", rs.CreateProfile)
		profiles.GET("", rs.ListProfiles)
		profiles.DELETE("", rs.ClearUserData)
		profiles.GET("/active", rs.GetActiveProfile)
		profiles.GET("/exists", rs.UserExists)
		profiles.POST("/login", rs.Login)
		profiles.POST("/logout", rs.Logout)
		profiles.PUT("/:id", rs.UpdateProfile)
	}

	readings := api.Group("/readings")
	{
		readings.POST("", rs.CreateReading)
		readings.GET("", rs.ListReadings)
		readings.GET("/recent", rs.RecentReadings)
		readings.GET("/:id", rs.GetReading)
		readings.DELETE("/:id", rs.DeleteReading)
	}

	medications := api.Group("/medications")
	{
		medications.POST("", rs.AddMedication)
		medications.GET("", rs.ListMedications)
		medications.GET("/next", rs.NextDoses)
		medications.GET("/:id", rs.GetMedication)
		medications.PUT("/:id", rs.UpdateMedication)
		medications.DELETE("/:id", rs.DeleteMedication)
		medications.PUT("/:id/schedules", rs.ReplaceSchedules)
		medications.POST("/:id/taken", rs.MarkTaken)
		medications.GET("/:id/logs", rs.MedicationLogs)
	}

	api.PATCH("/schedules/:id", rs.PatchSchedule)
	api.GET("/logs/recent", rs.RecentLogs)
	api.GET("/analysis", rs.Analysis)

	reminders := api.Group("/reminders")
	{
		reminders.GET("", rs.ListReminders)
		reminders.POST("/test", rs.TestReminder)
		reminders.POST("/rebuild", rs.RebuildReminders)
	}

	live := api.Group("/live")
	{
		live.GET("/medications", rs.LiveMedications)
		live.GET("/readings", rs.LiveReadings)
		live.GET("/profile", rs.LiveProfile)
		live.GET("/logs", rs.LiveLogs)
	}
}
