package domain

import "context"

// BadgeRecord is the proof that an attendee was present at an event.
// Its identity is the (event name, attendee) pair; it is never updated or revoked.
// swagger:model BadgeRecord
type BadgeRecord struct {
	WasLate bool `json:"was_late"`
}

// MintBadgeMsg is the inbound command that issues a badge.
type MintBadgeMsg struct {
	Event    string `json:"event"`
	Attendee string `json:"attendee"`
	WasLate  bool   `json:"was_late"`
}

// AddressValidator checks that a string is a well-formed account address and returns its canonical form.
type AddressValidator interface {
	Validate(addr string) (string, error)
}

// BadgeIssuer decides whether an attendee may receive a badge and writes it through both badge indexes.
type BadgeIssuer interface {
	MintBadge(ctx context.Context, kv KVStore, env Env, msg MintBadgeMsg) (*Response, error)
	// GetBadge reads the badge through the event-first index.
	GetBadge(ctx context.Context, kv KVStore, event, attendee string) (*BadgeRecord, error)
	// GetAttendeeBadge reads the badge through the attendee-first index.
	GetAttendeeBadge(ctx context.Context, kv KVStore, attendee, event string) (*BadgeRecord, error)
}
