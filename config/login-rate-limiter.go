package config

import "time"

// Login rate limit configuration
type LoginRateLimitConfig struct {
	AttemptsThreshold1 int           // Number of failed logins before first cooldown
	CooldownDuration1  time.Duration // First cooldown duration
	AttemptsThreshold2 int           // Number of failed logins before second cooldown
	CooldownDuration2  time.Duration // Second cooldown duration
}

var DefaultLoginRateLimitConfig = LoginRateLimitConfig{
	AttemptsThreshold1: 5,
	CooldownDuration1:  1 * time.Minute,
	AttemptsThreshold2: 10,
	CooldownDuration2:  10 * time.Minute,
}
