package game

import "errors"

// ErrInvalidArgument is wrapped by every validation failure in the game and
// experiment packages. Callers match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
