package reminder

import (
	"sort"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

type postedNotification struct {
	Notification
	timer clockwork.Timer
}

// DesktopNotifier shows notifications through the desktop notification
// service. The service cannot retract a bubble, so the notifier keeps its own
// list of live notifications for dismissal and timeouts.
type DesktopNotifier struct {
	enabled bool
	clock   clockwork.Clock
	send    func(title, message string) error

	mu     sync.Mutex
	active map[int]*postedNotification
}

func NewDesktopNotifier(clock clockwork.Clock, enabled bool) *DesktopNotifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DesktopNotifier{
		enabled: enabled,
		clock:   clock,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		active: make(map[int]*postedNotification),
	}
}

// WithSender replaces the desktop call, e.g. with a recorder in tests.
func (n *DesktopNotifier) WithSender(send func(title, message string) error) *DesktopNotifier {
	n.send = send
	return n
}

func (n *DesktopNotifier) Notify(notification Notification) error {
	logger := common.GetCategoryLogger(common.LoggerNameReminder, common.LoggerCategoryNotifier)

	if !n.enabled {
		return common.ErrNotificationsDenied
	}

	if err := n.send(notification.Title, notification.Body); err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "NOTIFY_FAILED", "post desktop notification failed")
	}

	notification.PostedAt = n.clock.Now()
	posted := &postedNotification{Notification: notification}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.dropLocked(notification.ID)
	if notification.Timeout > 0 {
		posted.timer = n.clock.AfterFunc(notification.Timeout, func() {
			n.expire(posted)
		})
	}
	n.active[notification.ID] = posted

	logger.Info("Notification posted",
		zap.Int("id", notification.ID),
		zap.String("channel", notification.Channel),
		zap.String("title", notification.Title))
	return nil
}

func (n *DesktopNotifier) expire(posted *postedNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.active[posted.ID] == posted {
		delete(n.active, posted.ID)
	}
}

func (n *DesktopNotifier) dropLocked(id int) {
	if prev, ok := n.active[id]; ok {
		if prev.timer != nil {
			prev.timer.Stop()
		}
		delete(n.active, id)
	}
}

func (n *DesktopNotifier) Dismiss(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dropLocked(id)
}

func (n *DesktopNotifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, 0, len(n.active))
	for _, posted := range n.active {
		out = append(out, posted.Notification)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
