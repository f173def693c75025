package overtime

import "errors"

var ErrInvalidClockTime = errors.New("invalid clock time")
