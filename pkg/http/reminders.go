package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
)

var errRemindersDisabled = common.NewError(common.ErrorTypePermission, "REMINDERS_DISABLED", "reminder scheduler is not running")

func (rs *RestfulServer) ListReminders(c *gin.Context) {
	if rs.Reminders == nil {
		c.JSON(http.StatusOK, gin.H{"pending": []reminder.Alarm{}, "notifications": []reminder.Notification{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending":       rs.Reminders.Pending(),
		"notifications": rs.Reminders.Notifications(),
	})
}

func (rs *RestfulServer) TestReminder(c *gin.Context) {
	if rs.Reminders == nil {
		abortWithError(c, errRemindersDisabled)
		return
	}
	if err := rs.Reminders.TestNotification(); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RebuildReminders goes through the event queue when one is running, so it
// never overlaps a fire or an acknowledgement.
func (rs *RestfulServer) RebuildReminders(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case rs.Dispatcher != nil:
		id, err := rs.Dispatcher.Deliver(ctx, reminder.BootEvent())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "event_id": id})
	case rs.Reminders != nil:
		if err := rs.Reminders.Rebuild(ctx); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	default:
		abortWithError(c, errRemindersDisabled)
	}
}
