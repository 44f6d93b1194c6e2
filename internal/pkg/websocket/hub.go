package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kliklance/kliklance/internal/pkg/logger"
)

// Kind distinguishes the two room channels served per job.
type Kind string

const (
	KindChat Kind = "chat"
	KindCall Kind = "call"
)

// RoomKey identifies one broadcast group: a job plus a channel kind.
type RoomKey struct {
	JobID int64
	Kind  Kind
}

// ChatRoom returns the chat room key for a job
func ChatRoom(jobID int64) RoomKey {
	return RoomKey{JobID: jobID, Kind: KindChat}
}

// CallRoom returns the call-signaling room key for a job
func CallRoom(jobID int64) RoomKey {
	return RoomKey{JobID: jobID, Kind: KindCall}
}

func (k RoomKey) String() string {
	return fmt.Sprintf("%s_%d", k.Kind, k.JobID)
}

type broadcastOptions struct {
	excludeMarker string
	targetUserID  int64
}

// BroadcastOption adjusts delivery of a single broadcast.
type BroadcastOption func(*broadcastOptions)

// ExcludeMarker suppresses delivery to the connection carrying the
// given marker. The connection stays a room member; suppression happens
// at delivery time only.
func ExcludeMarker(marker string) BroadcastOption {
	return func(o *broadcastOptions) { o.excludeMarker = marker }
}

// TargetUser narrows delivery to connections owned by one user.
func TargetUser(userID int64) BroadcastOption {
	return func(o *broadcastOptions) { o.targetUserID = userID }
}

// Hub is the process-wide room registry. Rooms exist implicitly while
// at least one member is joined; membership is ephemeral.
type Hub struct {
	mu    sync.Mutex
	rooms map[RoomKey]map[*Client]struct{}
}

// NewHub creates an empty room registry
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[RoomKey]map[*Client]struct{}),
	}
}

// Join adds the client to the room, creating it on first join.
func (h *Hub) Join(key RoomKey, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[key]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[key] = members
	}
	members[client] = struct{}{}
}

// Leave removes the client from the room. Leaving a room the client
// never joined is a no-op.
func (h *Hub) Leave(key RoomKey, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[key]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, key)
	}
}

// MemberCount returns the current number of members in the room.
func (h *Hub) MemberCount(key RoomKey) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[key])
}

// Broadcast delivers the event to every current room member. Delivery
// is fire-and-forget per member: a slow or dead member is logged and
// skipped without affecting the others. Broadcasts to the same room are
// serialized, so every member observes them in issue order.
func (h *Hub) Broadcast(key RoomKey, event interface{}, opts ...BroadcastOption) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling broadcast event: %w", err)
	}

	var options broadcastOptions
	for _, opt := range opts {
		opt(&options)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for member := range h.rooms[key] {
		if options.excludeMarker != "" && member.Marker == options.excludeMarker {
			continue
		}
		if options.targetUserID != 0 && member.Principal.ID != options.targetUserID {
			continue
		}
		if !member.Enqueue(data) {
			logger.Warn("Dropped broadcast for slow member",
				logger.String("room", key.String()),
				logger.Int64("user_id", member.Principal.ID))
		}
	}

	return nil
}
