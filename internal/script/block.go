package script

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// BlockTag is the element name that marks an executable script block.
const BlockTag = "py-script"

// OnClickAttr is the attribute binding an element to a handler expression.
// Documents write it as py-onClick; the parser canonicalizes to lower case.
const OnClickAttr = "py-onclick"

// IDPrefix is the prefix of every generated identifier.
const IDPrefix = "py-"

// Block is one executable unit of a page. It persists for the lifetime of
// the page; its element is also its implicit output target.
type Block struct {
	// ID is the element id, explicit or generated. Never empty.
	ID string
	// Ordinal is the block's zero-based position in document order.
	Ordinal int
	// Source is the script text captured from the element at discovery.
	Source string
	// Node is the live element in the page tree.
	Node *html.Node
}

// HandlerBinding ties a page element to the expression evaluated when the
// element's event fires. Only the click pseudo-event is modeled.
type HandlerBinding struct {
	// ElementID is the bound element's id, explicit or generated.
	ElementID string
	// Expr is the script expression to evaluate on dispatch.
	Expr string
}

// NewID returns a fresh generated identifier with the py- prefix.
func NewID() string {
	// The first uuid group is enough entropy for per-page uniqueness.
	return IDPrefix + strings.SplitN(uuid.NewString(), "-", 2)[0]
}
