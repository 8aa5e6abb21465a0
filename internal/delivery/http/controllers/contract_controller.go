package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"poapregistry/internal/delivery/http/helpers"
	"poapregistry/internal/delivery/http/middleware"
	"poapregistry/internal/domain"
)

// RegisterEventRequest is the request body for POST /events.
type RegisterEventRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	StartTime   uint64 `json:"start_time"`
	EndTime     uint64 `json:"end_time"`
}

// MintBadgeRequest is the request body for POST /events/{name}/badges.
type MintBadgeRequest struct {
	Attendee string `json:"attendee"`
	WasLate  bool   `json:"was_late"`
}

// Validate implements Validator.
func (m MintBadgeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(m.Attendee) == "" {
		errs = append(errs, "attendee is required")
	}
	return errs
}

// RegisterEventSuccessResponse is the success envelope for POST /events (201).
type RegisterEventSuccessResponse struct {
	Data  *domain.EventRecord `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// BadgeSuccessResponse is the success envelope for badge endpoints.
type BadgeSuccessResponse struct {
	Data  *domain.BadgeRecord `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// CountSuccessResponse is the success envelope for GET /count.
type CountSuccessResponse struct {
	Data  *domain.GetCountResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type ContractController struct {
	Logger  *slog.Logger
	Service domain.ContractService
	// Now is the block clock; commands see it truncated to whole seconds.
	Now func() time.Time
}

func NewContractController(logger *slog.Logger, svc domain.ContractService) *ContractController {
	return &ContractController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

func (c *ContractController) env(r *http.Request) (domain.Env, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		return domain.Env{}, false
	}
	return domain.Env{Time: uint64(c.Now().Unix()), Sender: caller}, true
}

// RegisterEvent godoc
// @Summary Register an event
// @Description Creates an event owned by the caller. Names are unique forever; the window must not have ended.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body RegisterEventRequest true "Event"
// @Success 201 {object} controllers.RegisterEventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, name_too_short, name_too_long, invalid_image_url, start_before_end, event_already_over"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: event_already_registered"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *ContractController) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	var req RegisterEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	env, ok := c.env(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	resp, err := c.Service.Execute(r.Context(), env, domain.ExecuteMsg{
		RegisterEvent: &domain.RegisterEventMsg{
			Name:        req.Name,
			Image:       req.Image,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
		},
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, resp.Data)
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Success 200 {object} controllers.RegisterEventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name} [get]
func (c *ContractController) GetEvent(w http.ResponseWriter, r *http.Request) {
	c.query(w, r, domain.QueryMsg{GetEvent: &domain.GetEventQuery{Name: r.PathValue("name")}})
}

// MintBadge godoc
// @Summary Mint a badge
// @Description Issues the attendee's badge for the event. Only the event owner may mint, only while the event runs, once per attendee.
// @Tags badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param badge body MintBadgeRequest true "Attendee and lateness"
// @Success 201 {object} controllers.BadgeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, event_not_started, event_already_over, invalid_address"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (missing token)"
// @Failure 403 {object} helpers.APIResponse "error.code: unauthorized (not the owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: badge_already_issued"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name}/badges [post]
func (c *ContractController) MintBadge(w http.ResponseWriter, r *http.Request) {
	var req MintBadgeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	env, ok := c.env(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	resp, err := c.Service.Execute(r.Context(), env, domain.ExecuteMsg{
		MintBadge: &domain.MintBadgeMsg{
			Event:    r.PathValue("name"),
			Attendee: req.Attendee,
			WasLate:  req.WasLate,
		},
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, resp.Data)
}

// GetBadge godoc
// @Summary Get a badge by event
// @Tags badges
// @Produce json
// @Param name path string true "Event name"
// @Param attendee path string true "Attendee address"
// @Success 200 {object} controllers.BadgeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_address"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{name}/badges/{attendee} [get]
func (c *ContractController) GetBadge(w http.ResponseWriter, r *http.Request) {
	c.query(w, r, domain.QueryMsg{GetBadge: &domain.GetBadgeQuery{
		Event:    r.PathValue("name"),
		Attendee: r.PathValue("attendee"),
	}})
}

// GetAttendeeBadge godoc
// @Summary Get a badge by attendee
// @Tags badges
// @Produce json
// @Param attendee path string true "Attendee address"
// @Param name path string true "Event name"
// @Success 200 {object} controllers.BadgeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_address"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /attendees/{attendee}/badges/{name} [get]
func (c *ContractController) GetAttendeeBadge(w http.ResponseWriter, r *http.Request) {
	c.query(w, r, domain.QueryMsg{GetBadge: &domain.GetBadgeQuery{
		Event:      r.PathValue("name"),
		Attendee:   r.PathValue("attendee"),
		ByAttendee: true,
	}})
}

// GetCount godoc
// @Summary Get the counter
// @Tags contract
// @Produce json
// @Success 200 {object} controllers.CountSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (not instantiated)"
// @Router /count [get]
func (c *ContractController) GetCount(w http.ResponseWriter, r *http.Request) {
	c.query(w, r, domain.QueryMsg{GetCount: &struct{}{}})
}

func (c *ContractController) query(w http.ResponseWriter, r *http.Request, msg domain.QueryMsg) {
	out, err := c.Service.Query(r.Context(), msg)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}
