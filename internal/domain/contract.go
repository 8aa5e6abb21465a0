package domain

import (
	"context"
	"fmt"
	"time"
)

// Env is what the hosting environment knows about the current call.
type Env struct {
	// Time is the current wall-clock time in seconds since epoch.
	Time uint64
	// Sender is the authenticated identity of the caller.
	Sender string
}

// Attribute is a key/value pair attached to a response or notification.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Notification is a structured observable effect of a successful command.
type Notification struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// Attr returns the value of the first attribute named key.
func (n Notification) Attr(key string) string {
	for _, a := range n.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// Notification types.
const (
	NotificationRegisterEvent = "register-event"
	NotificationMintBadge     = "mint-badge"
)

// Response is returned by a successful command.
// swagger:model Response
type Response struct {
	Data          any            `json:"data,omitempty"`
	Attributes    []Attribute    `json:"attributes"`
	Notifications []Notification `json:"notifications"`
}

// NewResponse returns an empty Response.
func NewResponse() *Response {
	return &Response{Attributes: []Attribute{}, Notifications: []Notification{}}
}

// AddAttribute appends a response attribute and returns r.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddNotification appends a notification and returns r.
func (r *Response) AddNotification(n Notification) *Response {
	r.Notifications = append(r.Notifications, n)
	return r
}

// ExecuteMsg is a state-changing command. Exactly one field must be set.
type ExecuteMsg struct {
	RegisterEvent *RegisterEventMsg `json:"register_event,omitempty"`
	MintBadge     *MintBadgeMsg     `json:"mint_badge,omitempty"`
}

// Validate checks that exactly one command is set.
func (m ExecuteMsg) Validate() error {
	n := 0
	if m.RegisterEvent != nil {
		n++
	}
	if m.MintBadge != nil {
		n++
	}
	if n != 1 {
		return fmt.Errorf("%w: execute message must carry exactly one command, got %d", ErrInvalidInput, n)
	}
	return nil
}

// GetEventQuery looks up one event.
type GetEventQuery struct {
	Name string `json:"name"`
}

// GetBadgeQuery looks up one badge. ByAttendee selects the attendee-first index.
type GetBadgeQuery struct {
	Event      string `json:"event"`
	Attendee   string `json:"attendee"`
	ByAttendee bool   `json:"by_attendee"`
}

// QueryMsg is a read-only request. Exactly one field must be set.
type QueryMsg struct {
	GetCount *struct{}      `json:"get_count,omitempty"`
	GetEvent *GetEventQuery `json:"get_event,omitempty"`
	GetBadge *GetBadgeQuery `json:"get_badge,omitempty"`
}

// GetCountResponse is the result of the count query.
type GetCountResponse struct {
	Count int32 `json:"count"`
}

// InstantiateMsg initialises contract state.
type InstantiateMsg struct {
	Count int32 `json:"count"`
}

// State is the counter kept for the count query.
type State struct {
	Count int32  `json:"count"`
	Owner string `json:"owner"`
}

// ContractInfo records the name and version that instantiated the store.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// Counter owns the demo counter state and the contract version record.
type Counter interface {
	Instantiate(ctx context.Context, kv KVStore, env Env, msg InstantiateMsg) (*Response, error)
	GetCount(ctx context.Context, kv KVStore) (*GetCountResponse, error)
	GetContractInfo(ctx context.Context, kv KVStore) (*ContractInfo, error)
}

// NotificationPublisher delivers committed notifications to external observers.
type NotificationPublisher interface {
	Publish(ctx context.Context, n Notification) error
}

// ContractService is the hosting-environment entry point: it dispatches commands and queries
// against the store, one transaction per call.
type ContractService interface {
	Instantiate(ctx context.Context, env Env, msg InstantiateMsg) (*Response, error)
	Execute(ctx context.Context, env Env, msg ExecuteMsg) (*Response, error)
	Query(ctx context.Context, msg QueryMsg) (any, error)
}

// ContractMetrics records the outcome of each dispatched command.
// code is empty on success and domain.ErrorCode(err) otherwise.
type ContractMetrics interface {
	ObserveCommand(command, code string, elapsed time.Duration)
}
