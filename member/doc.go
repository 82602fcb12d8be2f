// Package member implements the member signature model and the invocable
// candidate variants that dispatch selects between.
//
// A Signature is the immutable declarative description of one invocable
// member: its internal name, its generic slot count and its ordered
// parameter list with optionality and variadic-tail flags. A Candidate pairs
// a Signature with a preferred dispatch name and an executable capability.
//
// Candidates form a closed, flat union rather than an inheritance tree:
//
//   - Method: an explicit invoke closure registered at bind time
//   - Property: accessor closures, expanded into a getter candidate (zero
//     parameters) and a setter candidate (one parameter) that share the
//     preferred name so arity-driven overload selection picks between them
//   - Field: reflection-backed access to an exported struct field of the
//     bound target
//   - Func: convenience adapter deriving a Signature from an ordinary Go
//     function and invoking it with automatic argument coercion
//
// There is no attribute or tag scanning here: every member is declared by an
// explicit, code-level registration step (or via the manifest package).
package member
