// Package dynabind provides a high-level façade over the dispatch registry
// and the event hub, enabling runtime member dispatch on an object from a
// declared contract description. Most applications interact with this
// package by:
//  1. Declaring members (explicit constructors in package member, or a YAML
//     manifest via package manifest)
//  2. Binding them to a target instance via Bind()
//  3. Invoking members by name with loosely typed arguments, and raising /
//     subscribing to declared events
//
// Overload selection among same-named members uses the deviancy scoring of
// package dispatch: exact argument matches win over implicit conversions,
// and both win over relying on optional-parameter defaults. All defaults
// are safe for local development and testing; production embeddings
// typically supply a structured logger.
package dynabind

import (
	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/dispatch"
	"github.com/hupe1980/dynabind/event"
	"github.com/hupe1980/dynabind/logging"
	"github.com/hupe1980/dynabind/member"
)

// Options configures a bound Object.
type Options struct {
	// Logger receives structured dispatch and event records (defaults to a
	// NoOp logger if nil).
	Logger logging.Logger

	// Events are the event names declared on the object at bind time.
	// Raising or subscribing to anything else is an error.
	Events []string
}

// Object is a target instance bound to its member candidates and declared
// events. The candidate set is immutable after Bind; the event subscription
// set is the only mutable state.
type Object struct {
	registry *dispatch.Registry
	hub      *event.Hub
	logger   logging.Logger
}

// Bind wires a target instance to its declared members and events. A nil
// candidate list is a programming error and fails immediately.
func Bind(target any, candidates []member.Candidate, opts *Options) (*Object, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	registry, err := dispatch.NewRegistry(target, candidates, dispatch.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	hub := event.NewHub(target, event.WithLogger(logger))
	if err := hub.Declare(opts.Events...); err != nil {
		return nil, err
	}

	return &Object{registry: registry, hub: hub, logger: logger}, nil
}

// Invoke dispatches a member call by name: every candidate is scored, the
// unique best match is executed and its result returned. Failure conditions
// are *dispatch.NotFoundError and *dispatch.AmbiguousError.
func (o *Object) Invoke(name string, genericTypes []core.Type, args ...any) (any, error) {
	return o.registry.Invoke(name, genericTypes, args...)
}

// Resolve selects the winning candidate for a call without executing it.
func (o *Object) Resolve(name string, genericTypes []core.Type, args ...any) (member.Candidate, error) {
	return o.registry.Resolve(name, genericTypes, args...)
}

// Check validates that a call would resolve to exactly one candidate.
func (o *Object) Check(name string, genericTypes []core.Type, args ...any) error {
	return o.registry.Check(name, genericTypes, args...)
}

// Candidates returns a copy of the registered candidate list.
func (o *Object) Candidates() []member.Candidate {
	return o.registry.Candidates()
}

// Target returns the bound target instance.
func (o *Object) Target() any {
	return o.registry.Target()
}

// Events exposes the event hub for advanced subscription management.
func (o *Object) Events() *event.Hub {
	return o.hub
}

// Subscribe attaches a sink to the declared events (all of them when no
// names are given).
func (o *Object) Subscribe(sink event.Sink, names ...string) (*event.Subscription, error) {
	return o.hub.Subscribe(sink, names...)
}

// Raise forwards a declared event, sourced from the bound target, to every
// matching sink.
func (o *Object) Raise(name string, args ...any) error {
	return o.hub.Raise(name, args...)
}
