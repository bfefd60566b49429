package config

import "time"

// Cooldown configuration for repeated wrong flags on the same challenge
type SubmissionCooldownConfig struct {
	AttemptsThreshold1 int           // Number of wrong flags before first cooldown
	CooldownDuration1  time.Duration // First cooldown duration
	AttemptsThreshold2 int           // Number of wrong flags before second cooldown
	CooldownDuration2  time.Duration // Second cooldown duration
	AttemptsWindow     time.Duration // Window over which wrong flags are counted
}

var DefaultSubmissionCooldown = SubmissionCooldownConfig{
	AttemptsThreshold1: 3,
	CooldownDuration1:  1 * time.Minute,
	AttemptsThreshold2: 6,
	CooldownDuration2:  5 * time.Minute,
	AttemptsWindow:     15 * time.Minute,
}
