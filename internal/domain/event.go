package domain

import "context"

// Event name length bounds, inclusive, counted in characters.
const (
	MinEventNameLength = 2
	MaxEventNameLength = 100
)

// SecureImageScheme is the only accepted prefix for event image URLs.
const SecureImageScheme = "https://"

// EventRecord is a registered attendance-tracked event. It is created once and never mutated.
// swagger:model EventRecord
type EventRecord struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	StartTime   uint64 `json:"start_time"`
	EndTime     uint64 `json:"end_time"`
}

// NewEventRecord returns an EventRecord owned by owner.
func NewEventRecord(owner, name, image, description string, startTime, endTime uint64) *EventRecord {
	return &EventRecord{
		Owner:       owner,
		Name:        name,
		Image:       image,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
	}
}

// RegisterEventMsg is the inbound command that creates an event.
type RegisterEventMsg struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	StartTime   uint64 `json:"start_time"`
	EndTime     uint64 `json:"end_time"`
}

// EventRegistry creates and looks up events. Every call operates on the store handle it is given.
type EventRegistry interface {
	// RegisterEvent validates msg and persists a new event owned by env.Sender.
	// The returned Response carries the stored *EventRecord as Data.
	RegisterEvent(ctx context.Context, kv KVStore, env Env, msg RegisterEventMsg) (*Response, error)
	GetEvent(ctx context.Context, kv KVStore, name string) (*EventRecord, error)
}
