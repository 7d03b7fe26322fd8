package gate

import "errors"

var (
	ErrAlreadyDecided = errors.New("gate decision already made")
	ErrNoTransition   = errors.New("no transition matches the decision")
	ErrNilRenderer    = errors.New("nil renderer")
	ErrRender         = errors.New("failed to render gate decision")
)
