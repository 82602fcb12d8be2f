// Package manifest loads declarative member and event declarations from
// YAML and binds them to implementations.
//
// A manifest is the contract description of one bindable object: member
// names, generic slots, parameter types with optionality and variadic
// flags, and event names. Types are referenced by name and resolved through
// an explicit TypeTable the embedding application controls; a trailing '?'
// marks a nullable wrapper and a name listed under the member's generics
// becomes a placeholder, optionally constrained via the constraints
// mapping.
//
// Example:
//
//	events: [Changed]
//	members:
//	  - name: Log
//	    as: log
//	    params:
//	      - type: string
//	      - type: "int?"
//	        optional: true
//	  - name: Sum
//	    generics: [T]
//	    constraints: {T: float64}
//	    params:
//	      - type: T
//	        variadic: true
//
// Loading yields validated signatures; Bind pairs them with invoke
// closures by preferred name to produce dispatchable candidates.
package manifest
