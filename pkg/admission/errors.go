package admission

import "errors"

// ErrInvalidRequirements is returned when a requirement list cannot be decoded.
var ErrInvalidRequirements = errors.New("invalid admission requirements")
