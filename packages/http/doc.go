// Package http builds and dispatches the single request a reqq
// invocation makes.
//
// It wraps the standard library's http package with the tool's fixed
// policy:
//   - 10 second timeout, no retries
//   - ordered -H headers collapsed last-write-wins, unsendable entries
//     dropped
//   - raw (-d) and file (-f) bodies as a tagged variant, file winning
//     when both are given
package http
