package tilemap

// Workspace is caller-owned scratch memory: a flat run of Point slots.
// Its length is the hard ceiling on how many tiles an algorithm may hold in
// flight (heap entries or queued tiles). Algorithms never grow it, never keep
// it past return, and leave its contents unspecified.
type Workspace []Point

// NewWorkspace allocates a Workspace with the given number of slots.
// A negative count yields an empty Workspace.
func NewWorkspace(slots int) Workspace {
	if slots < 0 {
		slots = 0
	}
	return make(Workspace, slots)
}

// WorkspaceFor allocates a Workspace that is always sufficient for a map of
// the given tile count: one slot per tile. The A* open set holds each tile
// at most once, and the flood queues a tile only on its first visit.
func WorkspaceFor(tiles int) Workspace {
	if tiles < 1 {
		tiles = 1
	}
	return NewWorkspace(tiles)
}

// Slots returns the capacity of w in Points.
func (w Workspace) Slots() int {
	return len(w)
}
