package circuit

import "errors"

// ErrNoShots is returned when an execution is requested with fewer than
// one shot.
var ErrNoShots = errors.New("circuit: shots must be at least 1")
