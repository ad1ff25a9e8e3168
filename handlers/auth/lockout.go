package auth

import (
	"sync"
	"time"

	"festival/config"
)

// loginTracker applies an escalating cooldown after repeated failed
// logins for the same username
type loginTracker struct {
	mu       sync.Mutex
	cfg      config.LoginRateLimitConfig
	failures map[string]*loginState
}

type loginState struct {
	count        int
	blockedUntil time.Time
}

var tracker = &loginTracker{
	cfg:      config.DefaultLoginRateLimitConfig,
	failures: make(map[string]*loginState),
}

// Blocked reports whether the username is in a cooldown window, and if
// so for how much longer
func (t *loginTracker) Blocked(username string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, exists := t.failures[username]
	if !exists {
		return false, 0
	}
	remaining := time.Until(state.blockedUntil)
	if remaining <= 0 {
		return false, 0
	}
	return true, remaining
}

// RecordFailure counts a failed attempt and starts a cooldown when a
// threshold is crossed
func (t *loginTracker) RecordFailure(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, exists := t.failures[username]
	if !exists {
		state = &loginState{}
		t.failures[username] = state
	}
	state.count++

	switch {
	case state.count >= t.cfg.AttemptsThreshold2:
		state.blockedUntil = time.Now().Add(t.cfg.CooldownDuration2)
	case state.count >= t.cfg.AttemptsThreshold1:
		state.blockedUntil = time.Now().Add(t.cfg.CooldownDuration1)
	}
}

// RecordSuccess clears the failure history for the username
func (t *loginTracker) RecordSuccess(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failures, username)
}
