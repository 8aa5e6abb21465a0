package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"poapregistry/internal/domain"
)

// Command names used in logs and metrics.
const (
	CommandInstantiate   = "instantiate"
	CommandRegisterEvent = "register_event"
	CommandMintBadge     = "mint_badge"
)

type contractService struct {
	mu             sync.Mutex
	store          domain.Store
	registry       domain.EventRegistry
	issuer         domain.BadgeIssuer
	counter        domain.Counter
	notifier       domain.NotificationPublisher
	metrics        domain.ContractMetrics
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContractService wires the core components to a store. Commands are serialized and each
// runs in its own store transaction; notifications are published only after commit.
func NewContractService(
	store domain.Store,
	registry domain.EventRegistry,
	issuer domain.BadgeIssuer,
	counter domain.Counter,
	notifier domain.NotificationPublisher,
	metrics domain.ContractMetrics,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ContractService {
	return &contractService{
		store:          store,
		registry:       registry,
		issuer:         issuer,
		counter:        counter,
		notifier:       notifier,
		metrics:        metrics,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *contractService) Instantiate(ctx context.Context, env domain.Env, msg domain.InstantiateMsg) (*domain.Response, error) {
	return s.run(ctx, CommandInstantiate, env, func(kv domain.KVStore) (*domain.Response, error) {
		return s.counter.Instantiate(ctx, kv, env, msg)
	})
}

func (s *contractService) Execute(ctx context.Context, env domain.Env, msg domain.ExecuteMsg) (*domain.Response, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case msg.RegisterEvent != nil:
		return s.run(ctx, CommandRegisterEvent, env, func(kv domain.KVStore) (*domain.Response, error) {
			return s.registry.RegisterEvent(ctx, kv, env, *msg.RegisterEvent)
		})
	default:
		return s.run(ctx, CommandMintBadge, env, func(kv domain.KVStore) (*domain.Response, error) {
			return s.issuer.MintBadge(ctx, kv, env, *msg.MintBadge)
		})
	}
}

func (s *contractService) run(ctx context.Context, command string, env domain.Env, op func(kv domain.KVStore) (*domain.Response, error)) (*domain.Response, error) {
	if s.contextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.contextTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.apply(ctx, op)
	s.metrics.ObserveCommand(command, domain.ErrorCode(err), time.Since(start))

	if err != nil {
		s.logger.InfoContext(ctx, "command rejected",
			"command", command,
			"sender", env.Sender,
			"code", domain.ErrorCode(err),
			"err", err,
		)
		return nil, err
	}
	s.logger.InfoContext(ctx, "command executed", "command", command, "sender", env.Sender)

	for _, n := range resp.Notifications {
		if err := s.notifier.Publish(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "notification delivery failed", "type", n.Type, "err", err)
		}
	}
	return resp, nil
}

// apply runs op in one transaction while holding the dispatcher lock.
func (s *contractService) apply(ctx context.Context, op func(kv domain.KVStore) (*domain.Response, error)) (*domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var resp *domain.Response
	err := s.store.RunInTx(ctx, func(kv domain.KVStore) error {
		var opErr error
		resp, opErr = op(kv)
		return opErr
	})
	return resp, err
}

func (s *contractService) Query(ctx context.Context, msg domain.QueryMsg) (any, error) {
	var out any
	err := s.store.View(ctx, func(kv domain.KVStore) error {
		var err error
		switch {
		case msg.GetCount != nil:
			out, err = s.counter.GetCount(ctx, kv)
		case msg.GetEvent != nil:
			out, err = s.registry.GetEvent(ctx, kv, msg.GetEvent.Name)
		case msg.GetBadge != nil && msg.GetBadge.ByAttendee:
			out, err = s.issuer.GetAttendeeBadge(ctx, kv, msg.GetBadge.Attendee, msg.GetBadge.Event)
		case msg.GetBadge != nil:
			out, err = s.issuer.GetBadge(ctx, kv, msg.GetBadge.Event, msg.GetBadge.Attendee)
		default:
			err = fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
