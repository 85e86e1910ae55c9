// Package pyval defines the closed set of value variants that can flow from
// the interpreter into rendered page output, together with their textual
// rendering rules.
//
// Why a closed set?
//
// The display pipeline must turn arbitrary interpreter values into stable
// text. Doing that with open-ended reflection couples the renderer to the
// interpreter's internal object model and makes the textual form an accident
// of whatever fmt happens to produce. Instead, the interpreter boundary
// converts every value into one of the variants below exactly once, and the
// renderer only ever sees this package's types. Each variant has a defined
// rendering rule, applied recursively to nested containers.
package pyval
