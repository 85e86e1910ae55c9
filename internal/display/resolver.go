package display

import (
	"github.com/vk/pagehostgo/internal/pyval"
	"github.com/vk/pagehostgo/internal/script"
)

// Call is one transient display request. It is consumed immediately by the
// renderer; nothing retains it.
type Call struct {
	// Values are the ordered values to render.
	Values []pyval.Value
	// Target is the explicit target id, empty for implicit targeting.
	Target string
	// Append selects append mode (the default) over replace mode.
	Append bool
}

// Resolve determines the single target id for a call. The current block is
// passed explicitly by the call site and is nil when the call originates
// outside any block, e.g. from an event handler; implicit targeting is only
// legal during direct execution of a block, where the originating node is
// statically known.
func Resolve(call Call, current *script.Block) (string, error) {
	if call.Target != "" {
		return call.Target, nil
	}
	if current != nil {
		return current.ID, nil
	}
	return "", ErrImplicitTarget
}
