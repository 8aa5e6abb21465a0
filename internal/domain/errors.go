package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to match; collaborators wrap them with context.
var (
	ErrNotFound               = errors.New("not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrEventAlreadyRegistered = errors.New("event name was already registered")
	ErrNameTooShort           = errors.New("event name less than 2 characters")
	ErrNameTooLong            = errors.New("event name more than 100 characters")
	ErrInvalidImageURL        = errors.New("image URL must be https://")
	ErrStartBeforeEnd         = errors.New("event start time before end time")
	ErrEventAlreadyOver       = errors.New("event already over")
	ErrEventNotStarted        = errors.New("event not started")
	ErrBadgeAlreadyIssued     = errors.New("badge already issued")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidInput           = errors.New("invalid input")
	ErrReadOnly               = errors.New("store is read-only")
	ErrAlreadyInstantiated    = errors.New("contract already instantiated")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrConcurrentUpdate       = errors.New("concurrent update, transaction aborted")
)

// InvalidImageURLError reports an image URL that does not use the https scheme.
type InvalidImageURLError struct {
	URL string
}

func (e *InvalidImageURLError) Error() string {
	return fmt.Sprintf("image URL must be https://, was %s", e.URL)
}

// Is makes errors.Is(err, ErrInvalidImageURL) match.
func (e *InvalidImageURLError) Is(target error) bool {
	return target == ErrInvalidImageURL
}

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrNotFound, "not_found"},
	{ErrUnauthorized, "unauthorized"},
	{ErrEventAlreadyRegistered, "event_already_registered"},
	{ErrNameTooShort, "name_too_short"},
	{ErrNameTooLong, "name_too_long"},
	{ErrInvalidImageURL, "invalid_image_url"},
	{ErrStartBeforeEnd, "start_before_end"},
	{ErrEventAlreadyOver, "event_already_over"},
	{ErrEventNotStarted, "event_not_started"},
	{ErrBadgeAlreadyIssued, "badge_already_issued"},
	{ErrInvalidAddress, "invalid_address"},
	{ErrInvalidInput, "invalid_input"},
	{ErrReadOnly, "read_only"},
	{ErrAlreadyInstantiated, "already_instantiated"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrConcurrentUpdate, "concurrent_update"},
}

// ErrorCode returns a stable snake_case code for err, or "internal" when err matches no sentinel.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return "internal"
}
