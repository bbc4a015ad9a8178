package flood

import "errors"

// ErrBadHead indicates a queue head outside [0, len(ws)].
var ErrBadHead = errors.New("flood: head index out of range")
