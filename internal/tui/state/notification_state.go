package state

import "charm.land/lipgloss/v2"

// NotificationLevel is how loudly a banner is drawn
type NotificationLevel int

const (
	LevelInfo    NotificationLevel = iota // Feedback on a completed action
	LevelWarning                          // Action partly applied
	LevelError                            // Action refused
)

// maxNotifications caps the banners on screen; older ones drop off first
const maxNotifications = 3

// Notification is one banner
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the banners shown in the top-right corner.
// Normal-mode key presses clear it; drag feedback accumulates until the drop.
type NotificationState struct {
	queue  []Notification
	width  int
	height int
}

func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add queues a banner. Repeating the newest banner is a no-op.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	n := Notification{Level: level, Message: message}
	if len(s.queue) > 0 && s.queue[len(s.queue)-1] == n {
		return
	}
	s.queue = append(s.queue, n)
	if len(s.queue) > maxNotifications {
		s.queue = s.queue[len(s.queue)-maxNotifications:]
	}
}

func (s *NotificationState) Clear() {
	s.queue = nil
}

// All returns the queued banners, oldest first
func (s *NotificationState) All() []Notification {
	return s.queue
}

func (s *NotificationState) HasAny() bool {
	return len(s.queue) > 0
}

// SetWindowSize records the terminal size used to place the banners
func (s *NotificationState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// GetLayers renders each banner with render and stacks the results down the
// right edge, stopping at the first banner that would run off the screen.
func (s *NotificationState) GetLayers(render func(Notification) string) []*lipgloss.Layer {
	if s.width == 0 || len(s.queue) == 0 {
		return nil
	}

	var out []*lipgloss.Layer
	y := 0
	for _, n := range s.queue {
		banner := render(n)
		h := lipgloss.Height(banner)
		if y+h >= s.height {
			break
		}
		x := max(s.width-lipgloss.Width(banner)-1, 0)
		out = append(out, lipgloss.NewLayer(banner).X(x).Y(y))
		y += h + 1
	}
	return out
}
