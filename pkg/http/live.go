package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liyu1981.xyz/glucose-tracker/pkg/tracker"
)

// streamSnapshots writes every snapshot as one server-sent event until the
// client goes away or the live query ends.
func streamSnapshots[T any](c *gin.Context, event string, snapshots <-chan tracker.Snapshot[T]) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if snap.Err != nil {
				c.SSEvent("error", gin.H{"error": snap.Err.Error()})
			} else {
				rows := snap.Rows
				if rows == nil {
					rows = []T{}
				}
				c.SSEvent(event, rows)
			}
			c.Writer.Flush()
		}
	}
}

func (rs *RestfulServer) LiveMedications(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("all") == "true" {
		streamSnapshots(c, "medications", rs.Tracker.Medication.WatchMedications(ctx))
		return
	}
	streamSnapshots(c, "medications", rs.Tracker.Medication.WatchActiveMedications(ctx))
}

func (rs *RestfulServer) LiveReadings(c *gin.Context) {
	since, err := queryTime(c, "since")
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	if since.IsZero() {
		streamSnapshots(c, "readings", rs.Tracker.Reading.WatchReadings(ctx))
		return
	}
	streamSnapshots(c, "readings", rs.Tracker.Reading.WatchReadingsSince(ctx, since))
}

func (rs *RestfulServer) LiveProfile(c *gin.Context) {
	streamSnapshots(c, "profile", rs.Tracker.Profile.WatchActiveProfile(c.Request.Context()))
}

func (rs *RestfulServer) LiveLogs(c *gin.Context) {
	limit, err := queryLimit(c, defaultRecentLogs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	streamSnapshots(c, "logs", rs.Tracker.Log.WatchRecentLogs(c.Request.Context(), limit))
}
