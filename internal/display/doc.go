// Package display implements the output pipeline of a display call: resolve
// the target node, format the values, mutate the page.
//
// Resolution is pure: an explicit target wins verbatim, otherwise the
// calling block's own id is the target, otherwise the call has no legal
// target at all. The caller passes its originating block explicitly (nil
// for deferred contexts like event handlers); there is no ambient
// current-block state to consult.
//
// Rendering performs exactly one mutation batch per call: append mode adds
// one new div child per call under the target, replace mode swaps the
// target's entire content for the newly rendered text. A missing explicit
// target aborts before any mutation.
package display
