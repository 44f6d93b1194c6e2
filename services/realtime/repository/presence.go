package repository

import (
	"context"
	"fmt"

	"github.com/kliklance/kliklance/internal/pkg/constants"
)

// Presence mirrors room membership into Redis so out-of-process
// services can see who is online per room. It is a cache, not the
// authoritative registry; the hub owns live membership.

func presenceKey(kind string, jobID int64) string {
	return fmt.Sprintf(constants.KeyRoomPresence, kind, jobID)
}

// SetPresence marks the user online in the room's presence set.
func (r *RealtimeRepo) SetPresence(ctx context.Context, kind string, jobID, userID int64) error {
	key := presenceKey(kind, jobID)
	if err := r.redisClient.SAdd(ctx, key, constants.PresenceTTL, userID); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}

// RemovePresence marks the user offline in the room's presence set.
func (r *RealtimeRepo) RemovePresence(ctx context.Context, kind string, jobID, userID int64) error {
	key := presenceKey(kind, jobID)
	if err := r.redisClient.SRem(ctx, key, userID); err != nil {
		return fmt.Errorf("failed to remove presence: %w", err)
	}
	return nil
}
