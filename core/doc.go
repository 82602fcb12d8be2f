// Package core provides the foundational type system used by dynabind. It
// defines the core abstractions for:
//
//   - Type tokens (first-class runtime type descriptors backed by reflection)
//   - The universal top type Any and the explicit Nullable wrapper
//   - Generic placeholders (unbound type slots with an optional constraint)
//   - The implicit-conversion oracle (CanConvert / IsNullable) including the
//     closed numeric widening table
//   - Explicit registration of user-defined implicit conversions
//
// The package intentionally keeps dispatch concerns (signatures, scoring,
// registries) out of scope; it only answers questions about types and values
// so the higher layers can remain pure selection logic.
package core
