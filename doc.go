// Package journal provides the bookkeeping behind a set of personal journals.
// It is local-first: every journal is a single JSON document that is loaded
// whole, mutated in memory and rewritten whole after each change.
//
// The core functionalities include:
//   - Recommendation tracking: a Tracker records suggestions and follows them
//     through a status lifecycle (pending, implemented, rejected, unknown),
//     deriving a lesson once a suggestion is resolved and maintaining success
//     statistics incrementally.
//   - Category journals: a generic Log keeps timestamped entries partitioned by
//     category. It backs the self-assessment log, the knowledge base and the
//     learning log, each with its own digest.
//   - Persistence: a Store strategy decouples the journals from the
//     filesystem, so that tests can observe load and persist calls in memory.
//
// Rendering the data structures computed here is the job of the renderer
// package; this package never formats presentation text.
package journal
