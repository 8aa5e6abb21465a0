package services

import (
	"context"
	"fmt"
	"strconv"

	"poapregistry/internal/domain"
)

// Contract name and version recorded at instantiation.
const (
	ContractName    = "poap-registry"
	ContractVersion = "0.1.0"
)

type counterService struct{}

// NewCounterService returns the Counter.
func NewCounterService() domain.Counter {
	return &counterService{}
}

func (s *counterService) Instantiate(ctx context.Context, kv domain.KVStore, env domain.Env, msg domain.InstantiateMsg) (*domain.Response, error) {
	existing, err := contractInfo.MayLoad(ctx, kv)
	if err != nil {
		return nil, fmt.Errorf("load contract info: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyInstantiated
	}
	if err := contractInfo.Save(ctx, kv, domain.ContractInfo{Contract: ContractName, Version: ContractVersion}); err != nil {
		return nil, fmt.Errorf("save contract info: %w", err)
	}
	if err := counterState.Save(ctx, kv, domain.State{Count: msg.Count, Owner: env.Sender}); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	return domain.NewResponse().
		AddAttribute("method", "instantiate").
		AddAttribute("owner", env.Sender).
		AddAttribute("count", strconv.FormatInt(int64(msg.Count), 10)), nil
}

func (s *counterService) GetCount(ctx context.Context, kv domain.KVStore) (*domain.GetCountResponse, error) {
	st, err := counterState.Load(ctx, kv)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return &domain.GetCountResponse{Count: st.Count}, nil
}

func (s *counterService) GetContractInfo(ctx context.Context, kv domain.KVStore) (*domain.ContractInfo, error) {
	info, err := contractInfo.Load(ctx, kv)
	if err != nil {
		return nil, fmt.Errorf("load contract info: %w", err)
	}
	return info, nil
}
