package canopy

import (
	"fmt"
	"os"

	"github.com/phanxgames/canopy/physics"
)

// debugLog prints the tick's physics counters to stderr.
func (s *Scene) debugLog(stats physics.Stats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[canopy] bodies: %d | substeps: %d | contacts: %d | blocked: %d | events: %d | physics: %v\n",
		stats.Bodies, stats.Substeps, stats.Contacts, stats.Blocked, stats.Events, stats.Duration)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// object is used in a tree operation. Only called in debug mode.
func debugCheckDestroyed(o *GameObject, op string) {
	if o.destroyed {
		panic(fmt.Sprintf("canopy debug: %s on destroyed object %q", op, o.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(o *GameObject) {
	depth := 0
	for p := o; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: tree depth %d exceeds %d (object %q)\n",
			depth, debugMaxTreeDepth, o.Name)
	}
}

// debugCheckChildCount warns on stderr if an object has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(o *GameObject) {
	if len(o.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: object %q has %d children (threshold %d)\n",
			o.Name, len(o.children), debugMaxChildCount)
	}
}
