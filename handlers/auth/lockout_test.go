package auth

import (
	"testing"
	"time"

	"festival/config"

	"github.com/stretchr/testify/assert"
)

func newTracker() *loginTracker {
	return &loginTracker{
		cfg: config.LoginRateLimitConfig{
			AttemptsThreshold1: 3,
			CooldownDuration1:  time.Minute,
			AttemptsThreshold2: 5,
			CooldownDuration2:  10 * time.Minute,
		},
		failures: make(map[string]*loginState),
	}
}

func TestTrackerBlocksAfterThreshold(t *testing.T) {
	tr := newTracker()

	tr.RecordFailure("admin")
	tr.RecordFailure("admin")
	blocked, _ := tr.Blocked("admin")
	assert.False(t, blocked)

	tr.RecordFailure("admin")
	blocked, remaining := tr.Blocked("admin")
	assert.True(t, blocked)
	assert.Greater(t, remaining, time.Duration(0))
}

func TestTrackerEscalates(t *testing.T) {
	tr := newTracker()

	for i := 0; i < 5; i++ {
		tr.RecordFailure("admin")
	}
	_, remaining := tr.Blocked("admin")
	assert.Greater(t, remaining, 5*time.Minute, "second threshold applies the longer cooldown")
}

func TestTrackerClearsOnSuccess(t *testing.T) {
	tr := newTracker()

	for i := 0; i < 3; i++ {
		tr.RecordFailure("admin")
	}
	tr.RecordSuccess("admin")

	blocked, _ := tr.Blocked("admin")
	assert.False(t, blocked)
}

func TestTrackerIsolatesUsernames(t *testing.T) {
	tr := newTracker()

	for i := 0; i < 3; i++ {
		tr.RecordFailure("admin")
	}
	blocked, _ := tr.Blocked("festival")
	assert.False(t, blocked)
}
