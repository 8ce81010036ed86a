package domain

import "errors"

var (
	ErrMalformedSchedule = errors.New("malformed schedule body")
	ErrOutOfRange        = errors.New("duration out of range")
	ErrMalformedCallback = errors.New("callback missing chat ID or text")
	ErrDelegationFailed  = errors.New("delegation request failed")
)
