package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidRequestID = errors.New("invalid id in request path")
)
