package pool

import "errors"

// ErrCapacityTooSmall is returned by New when capacity cannot hold at least
// two slots, the smallest arena that can ever usefully back a container (a
// head sentinel plus one real node).
var ErrCapacityTooSmall = errors.New("pool: capacity must be at least 2 slots")
