package services

import (
	"poapregistry/internal/domain"
	"poapregistry/internal/repository/kv"
)

// Persistent layout. The badge relation is only reachable through the mirror map, so the
// attendees and badges indexes are always written together.
var (
	events       = kv.NewMap[domain.EventRecord]("events", 1)
	badges       = kv.NewMirrorMap[domain.BadgeRecord]("attendees", "badges")
	counterState = kv.NewItem[domain.State]("state")
	contractInfo = kv.NewItem[domain.ContractInfo]("contract_info")
)
