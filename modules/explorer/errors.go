package explorer

import "errors"

var ErrUnknownModule = errors.New("unknown module")
