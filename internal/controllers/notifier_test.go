package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierAutoDismiss(t *testing.T) {
	var changes []*Notification
	n := NewNotifier(func(note *Notification) {
		changes = append(changes, note)
	}).WithTTL(30 * time.Millisecond)

	n.Success("saved")
	if assert.NotNil(t, n.Current()) {
		assert.Equal(t, LevelSuccess, n.Current().Level)
		assert.Equal(t, "saved", n.Current().Message)
	}

	assert.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)
	// onChange saw the banner appear and then clear.
	assert.Len(t, changes, 2)
	assert.Nil(t, changes[1])
}

// An old banner's expiry timer must not clear its replacement.
func TestNotifierReplacementSurvivesOldTimer(t *testing.T) {
	n := NewNotifier(nil).WithTTL(30 * time.Millisecond)

	n.Success("first")
	time.Sleep(10 * time.Millisecond)
	n.Error("second")

	// Past the first banner's TTL, within the second's.
	time.Sleep(25 * time.Millisecond)
	if assert.NotNil(t, n.Current()) {
		assert.Equal(t, "second", n.Current().Message)
		assert.Equal(t, LevelError, n.Current().Level)
	}

	assert.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)
}
