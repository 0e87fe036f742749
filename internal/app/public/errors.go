package public

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrEventNotFound  = errors.New("event_not_found")
	ErrEventNotActive = errors.New("event_not_active")
)
