package constants

import "time"

// Presence keys are room-scoped sets of member user ids, maintained on
// join/leave so out-of-process services can read who is online.
const (
	// KeyRoomPresence is formatted with (kind, job id).
	KeyRoomPresence = "presence:%s:%d"

	// PresenceTTL bounds stale presence left behind by a crashed
	// process; every join refreshes it.
	PresenceTTL = 24 * time.Hour
)
