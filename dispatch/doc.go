// Package dispatch implements the signature deviancy scorer and the member
// registry that selects and executes the best-matching candidate for a call.
//
// The scorer is a pure function from (candidate, call) to a non-negative
// deviancy score: 0 is a perfect match, each implicit conversion adds a
// small unit, relying on an optional parameter's default adds a dominating
// unit, and the NoMatch sentinel means the candidate cannot serve the call
// at all. The registry scores every candidate, keeps the lowest-scoring
// survivors and either executes the unique winner or reports a not-found /
// ambiguous failure.
//
// Scoring and selection are synchronous, in-memory and free of shared
// mutable state; concurrent Invoke calls on one registry are safe as long
// as the underlying member implementations are.
package dispatch
