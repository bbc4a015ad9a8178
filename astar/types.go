package astar

// Length sentinels returned next to the matching error. They keep the
// integer result self-describing for callers that only look at the number.
const (
	// NoPath accompanies tilemap.ErrNoPath.
	NoPath = -1
	// OutOfWorkspace accompanies tilemap.ErrOutOfWorkspace.
	OutOfWorkspace = -2
	// CorruptRoute accompanies tilemap.ErrCorruptRoute.
	CorruptRoute = -3
)
