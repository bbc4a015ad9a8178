package tilemap

import "errors"

// Sentinel errors shared by the tilepath algorithms and backends.
var (
	// ErrOutOfWorkspace indicates the caller-supplied Workspace filled up
	// before the algorithm finished. It is a recoverable outcome: retry with
	// a larger Workspace or accept it as an intentional early bailout.
	ErrOutOfWorkspace = errors.New("tilemap: out of workspace")

	// ErrNoPath indicates the search exhausted its frontier without reaching the goal.
	ErrNoPath = errors.New("tilemap: no path")

	// ErrCorruptRoute indicates gradient data did not lead back to the start.
	ErrCorruptRoute = errors.New("tilemap: corrupt route")

	// ErrOutOfBounds indicates a coordinate outside the map reached a backend.
	// Backends panic with it: it is a programming error, not an outcome.
	ErrOutOfBounds = errors.New("tilemap: coordinate out of bounds")
)
