package reveal

import (
	"fmt"
	"time"
)

// scanStats holds per-scan counts and timing.
// Only populated when the registry is in debug mode.
type scanStats struct {
	scanned int
	entered int
	left    int
	scroll  float64
	elapsed time.Duration
}

// debugLog writes scan stats at debug level.
func (r *Registry) debugLog(stats scanStats) {
	if !r.debug {
		return
	}
	logger.Debug().
		Int("scanned", stats.scanned).
		Int("entered", stats.entered).
		Int("left", stats.left).
		Float64("scroll", stats.scroll).
		Dur("elapsed", stats.elapsed).
		Msg("scan")
}

// globalDebug mirrors the most recently set debug flag so that node
// operations (which lack a Registry pointer) can check it cheaply.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("reveal debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn().Int("depth", depth).Int("threshold", debugMaxTreeDepth).
			Str("node", n.Name).Msg("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn().Int("children", len(n.children)).Int("threshold", debugMaxChildCount).
			Str("node", n.Name).Msg("child count exceeds threshold")
	}
}
