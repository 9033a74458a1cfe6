package controllers

import (
	"sync"
	"time"
)

// NotificationLevel distinguishes success from error banners.
type NotificationLevel int

const (
	LevelSuccess NotificationLevel = iota
	LevelError
)

// Notification is one transient user-facing banner.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// DefaultNotificationTTL matches the UI's banner auto-dismiss interval.
const DefaultNotificationTTL = 5 * time.Second

// Notifier shows transient messages with auto-dismiss. A newer banner
// replaces the current one; the older banner's expiry timer is generation
// guarded so it cannot clear its replacement.
type Notifier struct {
	mu       sync.Mutex
	current  *Notification
	gen      uint64
	ttl      time.Duration
	onChange func(*Notification)
}

func NewNotifier(onChange func(*Notification)) *Notifier {
	return &Notifier{
		ttl:      DefaultNotificationTTL,
		onChange: onChange,
	}
}

// WithTTL overrides the auto-dismiss interval (tests use a short one).
func (n *Notifier) WithTTL(ttl time.Duration) *Notifier {
	n.mu.Lock()
	n.ttl = ttl
	n.mu.Unlock()
	return n
}

func (n *Notifier) Success(message string) {
	n.show(LevelSuccess, message)
}

func (n *Notifier) Error(message string) {
	n.show(LevelError, message)
}

func (n *Notifier) show(level NotificationLevel, message string) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.current = &Notification{Level: level, Message: message}
	notify := n.onChange
	current := n.current
	ttl := n.ttl
	n.mu.Unlock()

	if notify != nil {
		notify(current)
	}

	time.AfterFunc(ttl, func() {
		n.dismiss(gen)
	})
}

func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	if n.gen != gen || n.current == nil {
		n.mu.Unlock()
		return
	}
	n.current = nil
	notify := n.onChange
	n.mu.Unlock()

	if notify != nil {
		notify(nil)
	}
}

// Current returns the visible banner, nil when none.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
