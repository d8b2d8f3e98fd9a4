package grpc

import (
	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
)

// EventServer is the inbound boundary for host events: timer fires,
// notification actions and lifecycle signals all arrive through Deliver.
type EventServer struct {
	Dispatcher *reminder.Dispatcher
	Reminders  *reminder.Manager
	Limiter    *common.ClientLimiter
}

var _ ReminderEventsServer = (*EventServer)(nil)

