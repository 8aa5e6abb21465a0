package services

import (
	"context"
	"fmt"

	"poapregistry/internal/domain"
)

type badgeIssuer struct {
	addresses domain.AddressValidator
}

// NewBadgeIssuer returns a BadgeIssuer that validates attendee addresses with addresses.
func NewBadgeIssuer(addresses domain.AddressValidator) domain.BadgeIssuer {
	return &badgeIssuer{addresses: addresses}
}

// MintBadge checks, in order: the event exists, the caller owns it, the window has started,
// the window has not ended, the attendee address is valid, no badge exists yet.
func (s *badgeIssuer) MintBadge(ctx context.Context, kv domain.KVStore, env domain.Env, msg domain.MintBadgeMsg) (*domain.Response, error) {
	event, err := events.Load(ctx, kv, msg.Event)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if env.Sender != event.Owner {
		return nil, domain.ErrUnauthorized
	}
	if env.Time < event.StartTime {
		return nil, domain.ErrEventNotStarted
	}
	if env.Time > event.EndTime {
		return nil, domain.ErrEventAlreadyOver
	}

	attendee, err := s.addresses.Validate(msg.Attendee)
	if err != nil {
		return nil, fmt.Errorf("validate attendee: %w", err)
	}
	issued, err := badges.Has(ctx, kv, msg.Event, attendee)
	if err != nil {
		return nil, fmt.Errorf("check badge: %w", err)
	}
	if issued {
		return nil, domain.ErrBadgeAlreadyIssued
	}

	badge := domain.BadgeRecord{WasLate: msg.WasLate}
	if err := badges.Save(ctx, kv, msg.Event, attendee, badge); err != nil {
		return nil, fmt.Errorf("save badge: %w", err)
	}

	resp := domain.NewResponse().AddNotification(domain.Notification{
		Type: domain.NotificationMintBadge,
		Attributes: []domain.Attribute{
			{Key: "event", Value: msg.Event},
			{Key: "attendee", Value: attendee},
		},
	})
	resp.Data = &badge
	return resp, nil
}

func (s *badgeIssuer) GetBadge(ctx context.Context, kv domain.KVStore, event, attendee string) (*domain.BadgeRecord, error) {
	addr, err := s.addresses.Validate(attendee)
	if err != nil {
		return nil, fmt.Errorf("validate attendee: %w", err)
	}
	badge, err := badges.Load(ctx, kv, event, addr)
	if err != nil {
		return nil, fmt.Errorf("load badge: %w", err)
	}
	return badge, nil
}

func (s *badgeIssuer) GetAttendeeBadge(ctx context.Context, kv domain.KVStore, attendee, event string) (*domain.BadgeRecord, error) {
	addr, err := s.addresses.Validate(attendee)
	if err != nil {
		return nil, fmt.Errorf("validate attendee: %w", err)
	}
	badge, err := badges.LoadMirror(ctx, kv, addr, event)
	if err != nil {
		return nil, fmt.Errorf("load badge: %w", err)
	}
	return badge, nil
}
