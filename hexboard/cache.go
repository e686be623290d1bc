package hexboard

import "sync"

// shared holds one topology per radius for the process lifetime. Entries are
// written once and never evicted; values are read-only after publication.
var (
	sharedMu sync.RWMutex
	shared   = make(map[int]*Topology)
)

// Shared returns the process-wide topology for the given radius, building it
// on first use. The returned instance is cached forever and must be treated
// as read-only. Safe for concurrent use.
func Shared(radius int) (*Topology, error) {
	sharedMu.RLock()
	top, ok := shared[radius]
	sharedMu.RUnlock()
	if ok {
		return top, nil
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if top, ok = shared[radius]; ok {
		return top, nil
	}
	built, err := Build(radius)
	if err != nil {
		return nil, err
	}
	shared[radius] = built

	return built, nil
}
