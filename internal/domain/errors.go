package domain

import "errors"

// ErrInvalidOperatingWindow returned when an open window has opensAt >= closesAt
var ErrInvalidOperatingWindow = errors.New("domain: operating window opens_at must be before closes_at")
