package grpc

import (
	"context"
	"fmt"
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
)

type deliverRequest struct {
	Action string `zog:"action"`
}

var deliverRequestSchema = z.Struct(z.Shape{
	"Action": z.String().Trim().Min(1).Required(),
})

func deliverResponse(success bool, message, eventID string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"success":  success,
		"message":  message,
		"event_id": eventID,
	})
}

func (s *EventServer) Deliver(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	logger := common.GetLoggerWith(common.LoggerNameGrpcServer)

	data := req.AsMap()

	var parsed deliverRequest
	if issues := deliverRequestSchema.Parse(data, &parsed); issues != nil {
		return deliverResponse(false, fmt.Sprintf("validation error: %v", issues), "")
	}

	var extras map[string]any
	if raw, found := data["extras"]; found && raw != nil {
		var ok bool
		if extras, ok = raw.(map[string]any); !ok {
			return deliverResponse(false, "validation error: extras must be an object", "")
		}
	}

	if s.Dispatcher == nil {
		return deliverResponse(false, common.ErrQueueClosed.Message, "")
	}

	id, err := s.Dispatcher.Deliver(ctx, reminder.Event{Action: parsed.Action, Extras: extras})
	if err != nil {
		logger.Warn("Event not handled", zap.String("event_id", id), zap.String("action", parsed.Action), zap.Error(err))
		return deliverResponse(false, err.Error(), id)
	}

	return deliverResponse(true, "OK", id)
}

func (s *EventServer) ListPending(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	var alarms []reminder.Alarm
	if s.Reminders != nil {
		alarms = s.Reminders.Pending()
	}

	return structpb.NewStruct(map[string]any{
		"alarms": common.Mapper(alarms, func(a reminder.Alarm) any {
			return map[string]any{
				"schedule_id":   a.ScheduleID,
				"medication_id": a.MedicationID,
				"at":            a.At.Format(time.RFC3339),
			}
		}),
	})
}
