package services

import (
	"context"
	"fmt"
	"strings"

	"poapregistry/internal/domain"
)

type eventRegistry struct{}

// NewEventRegistry returns the EventRegistry.
func NewEventRegistry() domain.EventRegistry {
	return &eventRegistry{}
}

func (r *eventRegistry) RegisterEvent(ctx context.Context, kv domain.KVStore, env domain.Env, msg domain.RegisterEventMsg) (*domain.Response, error) {
	exists, err := events.Has(ctx, kv, msg.Name)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if exists {
		return nil, domain.ErrEventAlreadyRegistered
	}

	event, err := buildEvent(env, msg)
	if err != nil {
		return nil, err
	}
	if err := events.Save(ctx, kv, *event, event.Name); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	resp := domain.NewResponse().
		AddAttribute("register_event", event.Name).
		AddNotification(domain.Notification{
			Type: domain.NotificationRegisterEvent,
			Attributes: []domain.Attribute{
				{Key: "event", Value: event.Name},
				{Key: "owner", Value: event.Owner},
			},
		})
	resp.Data = event
	return resp, nil
}

// buildEvent applies the field rules in order; the first violation wins.
// Name length is measured in UTF-8 bytes.
func buildEvent(env domain.Env, msg domain.RegisterEventMsg) (*domain.EventRecord, error) {
	nameLen := len(msg.Name)
	if nameLen < domain.MinEventNameLength {
		return nil, domain.ErrNameTooShort
	}
	if nameLen > domain.MaxEventNameLength {
		return nil, domain.ErrNameTooLong
	}
	if !strings.HasPrefix(msg.Image, domain.SecureImageScheme) {
		return nil, &domain.InvalidImageURLError{URL: msg.Image}
	}
	if msg.StartTime >= msg.EndTime {
		return nil, domain.ErrStartBeforeEnd
	}
	if msg.EndTime < env.Time {
		return nil, domain.ErrEventAlreadyOver
	}
	return domain.NewEventRecord(env.Sender, msg.Name, msg.Image, msg.Description, msg.StartTime, msg.EndTime), nil
}

func (r *eventRegistry) GetEvent(ctx context.Context, kv domain.KVStore, name string) (*domain.EventRecord, error) {
	event, err := events.Load(ctx, kv, name)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	return event, nil
}
