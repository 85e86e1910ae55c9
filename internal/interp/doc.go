// Package interp is the interpreter boundary. The session treats a Runtime
// as a black box that executes block sources and handler expressions; the
// concrete implementation here embeds the goja engine and injects the
// page-facing builtins (display, print, console, tuple).
//
// A runtime is single-threaded by construction: block execution and event
// dispatch are driven by one goroutine, and every display call runs to
// completion before the next statement executes. The originating block is
// rebound explicitly around each execution; handler expressions run with no
// block context, which is what makes implicit targeting fail there.
package interp
