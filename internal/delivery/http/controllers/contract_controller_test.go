package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"poapregistry/internal/delivery/http/helpers"
	"poapregistry/internal/delivery/http/middleware"
	"poapregistry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var fixedNow = time.Unix(1500, 0)

// fakeContractService implements domain.ContractService for handler tests.
type fakeContractService struct {
	executeResp *domain.Response
	executeErr  error
	queryResult any
	queryErr    error
	lastEnv     domain.Env
	lastExecute domain.ExecuteMsg
	lastQuery   domain.QueryMsg
}

func (f *fakeContractService) Instantiate(ctx context.Context, env domain.Env, msg domain.InstantiateMsg) (*domain.Response, error) {
	return domain.NewResponse(), nil
}

func (f *fakeContractService) Execute(ctx context.Context, env domain.Env, msg domain.ExecuteMsg) (*domain.Response, error) {
	f.lastEnv = env
	f.lastExecute = msg
	if f.executeErr != nil {
		return nil, f.executeErr
	}
	return f.executeResp, nil
}

func (f *fakeContractService) Query(ctx context.Context, msg domain.QueryMsg) (any, error) {
	f.lastQuery = msg
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryResult, nil
}

func newTestController(svc domain.ContractService) *ContractController {
	c := NewContractController(testLogger, svc)
	c.Now = func() time.Time { return fixedNow }
	return c
}

func withCaller(r *http.Request, address string) *http.Request {
	return r.WithContext(middleware.SetCaller(r.Context(), address))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope.Data, envelope.Error
}

func TestContractController_RegisterEvent(t *testing.T) {
	event := domain.NewEventRecord("poap1owner", "DevCon", "https://x/y.png", "annual", 1000, 2000)

	tests := []struct {
		name       string
		body       string
		caller     string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"name":"DevCon","image":"https://x/y.png","description":"annual","start_time":1000,"end_time":2000}`,
			caller:     "poap1owner",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown field",
			body:       `{"name":"DevCon","owner":"poap1someone"}`,
			caller:     "poap1owner",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "no caller",
			body:       `{"name":"DevCon"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "domain validation",
			body:       `{"name":"D","image":"https://x/y.png","start_time":1000,"end_time":2000}`,
			caller:     "poap1owner",
			svcErr:     domain.ErrNameTooShort,
			wantStatus: http.StatusBadRequest,
			wantCode:   "name_too_short",
		},
		{
			name:       "duplicate",
			body:       `{"name":"DevCon","image":"https://x/y.png","start_time":1000,"end_time":2000}`,
			caller:     "poap1owner",
			svcErr:     domain.ErrEventAlreadyRegistered,
			wantStatus: http.StatusConflict,
			wantCode:   "event_already_registered",
		},
		{
			name:       "store failure",
			body:       `{"name":"DevCon","image":"https://x/y.png","start_time":1000,"end_time":2000}`,
			caller:     "poap1owner",
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := domain.NewResponse()
			resp.Data = event
			svc := &fakeContractService{executeResp: resp, executeErr: tt.svcErr}
			c := newTestController(svc)

			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			if tt.caller != "" {
				req = withCaller(req, tt.caller)
			}
			rr := httptest.NewRecorder()
			c.RegisterEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			var got domain.EventRecord
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, *event, got)

			require.NotNil(t, svc.lastExecute.RegisterEvent)
			assert.Nil(t, svc.lastExecute.MintBadge)
			assert.Equal(t, "DevCon", svc.lastExecute.RegisterEvent.Name)
			assert.Equal(t, uint64(2000), svc.lastExecute.RegisterEvent.EndTime)
			assert.Equal(t, domain.Env{Time: 1500, Sender: "poap1owner"}, svc.lastEnv)
		})
	}
}

func TestContractController_MintBadge(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "minted", body: `{"attendee":"poap1alice","was_late":true}`, wantStatus: http.StatusCreated},
		{name: "missing attendee", body: `{"was_late":true}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "not the owner", body: `{"attendee":"poap1alice"}`, svcErr: domain.ErrUnauthorized, wantStatus: http.StatusForbidden, wantCode: "unauthorized"},
		{name: "unknown event", body: `{"attendee":"poap1alice"}`, svcErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "not started", body: `{"attendee":"poap1alice"}`, svcErr: domain.ErrEventNotStarted, wantStatus: http.StatusBadRequest, wantCode: "event_not_started"},
		{name: "already issued", body: `{"attendee":"poap1alice"}`, svcErr: domain.ErrBadgeAlreadyIssued, wantStatus: http.StatusConflict, wantCode: "badge_already_issued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := domain.NewResponse()
			resp.Data = &domain.BadgeRecord{WasLate: true}
			svc := &fakeContractService{executeResp: resp, executeErr: tt.svcErr}
			c := newTestController(svc)

			req := httptest.NewRequest(http.MethodPost, "/events/DevCon/badges", strings.NewReader(tt.body))
			req.SetPathValue("name", "DevCon")
			req = withCaller(req, "poap1owner")
			rr := httptest.NewRecorder()
			c.MintBadge(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			assert.JSONEq(t, `{"was_late":true}`, string(data))
			require.NotNil(t, svc.lastExecute.MintBadge)
			assert.Equal(t, domain.MintBadgeMsg{Event: "DevCon", Attendee: "poap1alice", WasLate: true}, *svc.lastExecute.MintBadge)
		})
	}
}

func TestContractController_Queries(t *testing.T) {
	tests := []struct {
		name       string
		handler    func(c *ContractController) http.HandlerFunc
		pathValues map[string]string
		result     any
		svcErr     error
		wantStatus int
		wantQuery  domain.QueryMsg
		wantBody   string
	}{
		{
			name:       "event",
			handler:    func(c *ContractController) http.HandlerFunc { return c.GetEvent },
			pathValues: map[string]string{"name": "DevCon"},
			result:     domain.NewEventRecord("poap1owner", "DevCon", "https://x", "", 1, 2),
			wantStatus: http.StatusOK,
			wantQuery:  domain.QueryMsg{GetEvent: &domain.GetEventQuery{Name: "DevCon"}},
			wantBody:   `{"owner":"poap1owner","name":"DevCon","image":"https://x","description":"","start_time":1,"end_time":2}`,
		},
		{
			name:       "badge by event",
			handler:    func(c *ContractController) http.HandlerFunc { return c.GetBadge },
			pathValues: map[string]string{"name": "DevCon", "attendee": "poap1alice"},
			result:     &domain.BadgeRecord{WasLate: false},
			wantStatus: http.StatusOK,
			wantQuery:  domain.QueryMsg{GetBadge: &domain.GetBadgeQuery{Event: "DevCon", Attendee: "poap1alice"}},
			wantBody:   `{"was_late":false}`,
		},
		{
			name:       "badge by attendee",
			handler:    func(c *ContractController) http.HandlerFunc { return c.GetAttendeeBadge },
			pathValues: map[string]string{"name": "DevCon", "attendee": "poap1alice"},
			result:     &domain.BadgeRecord{WasLate: true},
			wantStatus: http.StatusOK,
			wantQuery:  domain.QueryMsg{GetBadge: &domain.GetBadgeQuery{Event: "DevCon", Attendee: "poap1alice", ByAttendee: true}},
			wantBody:   `{"was_late":true}`,
		},
		{
			name:       "count",
			handler:    func(c *ContractController) http.HandlerFunc { return c.GetCount },
			result:     &domain.GetCountResponse{Count: 3},
			wantStatus: http.StatusOK,
			wantQuery:  domain.QueryMsg{GetCount: &struct{}{}},
			wantBody:   `{"count":3}`,
		},
		{
			name:       "missing badge",
			handler:    func(c *ContractController) http.HandlerFunc { return c.GetBadge },
			pathValues: map[string]string{"name": "DevCon", "attendee": "poap1bob"},
			svcErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantQuery:  domain.QueryMsg{GetBadge: &domain.GetBadgeQuery{Event: "DevCon", Attendee: "poap1bob"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeContractService{queryResult: tt.result, queryErr: tt.svcErr}
			c := newTestController(svc)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.pathValues {
				req.SetPathValue(k, v)
			}
			rr := httptest.NewRecorder()
			tt.handler(c)(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantQuery, svc.lastQuery)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantBody == "" {
				require.NotNil(t, apiErr)
				return
			}
			require.Nil(t, apiErr)
			assert.JSONEq(t, tt.wantBody, string(data))
		})
	}
}
