// Package script models the executable blocks embedded in a page.
//
// Discovery walks the parsed document once, in document order, and produces
// a Registry: every <py-script> element becomes a Block with a stable id
// (explicit, or generated with the py- prefix and written back onto the
// element), an ordinal position, and its captured source text. Elements
// carrying a py-onClick attribute become handler bindings, dispatched later
// by the session as discrete tasks.
//
// A block's element doubles as its implicit output target, so discovery
// clears the element's content after capturing the source: whatever the
// block displays is all the element will show.
package script
