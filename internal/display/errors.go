package display

import (
	"errors"
	"fmt"
)

// ErrImplicitTarget is returned when a call with no explicit target runs
// outside any block context. The message is part of the page-facing
// contract: it is what the error channel shows.
var ErrImplicitTarget = errors.New("Implicit target not allowed here. Please use display(..., target=...)")

// TargetNotFoundError reports an explicit target id with no matching node.
type TargetNotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("display target not found: %q", e.ID)
}
