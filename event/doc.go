// Package event implements the notification side of dynabind: declared
// events on a bound object, subscriptions, and fan-out of raised events to
// notification sinks.
//
// Events are declared explicitly at bind time (no marker scanning); raising
// an undeclared event is an error. A Hub holds the declarations and the
// attached sinks; subscriptions may cover all declared events or a named
// subset and can be cancelled at any time. The attach/detach state is the
// only mutable state in the system and is guarded internally, so raising
// and (un)subscribing are safe from concurrent goroutines.
package event
