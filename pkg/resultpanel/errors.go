package resultpanel

import "errors"

var (
	ErrInvalidURL     = errors.New("invalid url")
	ErrHostNotAllowed = errors.New("host not allowed")
	ErrFetch          = errors.New("failed to fetch url")
	ErrInvalidJSON    = errors.New("response body is not valid json")
	ErrTimeout        = errors.New("resultpanel: timed out waiting for submission")
)
