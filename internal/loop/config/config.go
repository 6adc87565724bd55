// Package config centralizes the tunable parameters of the client and hub loops.
package config

import "time"

// Player names
const (
	MaxNameLength = 16 // Maximum characters typed on the name screen
)

// Aiming
const (
	AimReach = 200.0 // World distance of a keyboard aim point from the player
)

// Upgrade menu
const (
	MenuWidth = 52 // Columns of the upgrade menu box
)

// Notifications
const (
	HighScoreToastSeconds = 5.0 // How long other players' high scores are shown
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxFrameDelta         = 0.1 // Seconds; longer stalls are simulated as this
)

// Hub
const (
	EventBuffer     = 16              // Per-client event channel capacity
	ShutdownPollGap = 200 * time.Millisecond
)
