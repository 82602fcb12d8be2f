package event

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/dynabind/logging"
)

var (
	// ErrNilSink is returned when a subscription is attempted without a
	// sink.
	ErrNilSink = errors.New("dynabind: sink must not be nil")

	// ErrEmptyEventName is returned when an event is declared without a
	// name.
	ErrEmptyEventName = errors.New("dynabind: event name must not be empty")

	// ErrEventAlreadyDeclared is returned when the same event name is
	// declared twice on one hub.
	ErrEventAlreadyDeclared = errors.New("dynabind: event already declared")
)

// UndeclaredEventError reports a subscribe or raise against an event name
// the hub never declared.
type UndeclaredEventError struct {
	Event string
}

func (e *UndeclaredEventError) Error() string {
	return fmt.Sprintf("dynabind: event %q not declared", e.Event)
}

// Hub owns the declared events of one bound object and fans raised events
// out to the attached sinks. Declarations are fixed after bind time; the
// subscription set is the hub's only mutable state and is guarded by an
// RWMutex.
type Hub struct {
	source any
	logger logging.Logger

	mu       sync.RWMutex
	declared map[string]struct{}
	subs     map[string]*subscription
}

type subscription struct {
	id    string
	sink  Sink
	names map[string]struct{} // nil means all declared events
}

// HubOption customizes a Hub.
type HubOption func(*Hub)

// WithLogger installs a structured logger; the default is silent.
func WithLogger(l logging.Logger) HubOption {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHub creates a hub for events raised on source.
func NewHub(source any, opts ...HubOption) *Hub {
	h := &Hub{
		source:   source,
		logger:   logging.NoOpLogger{},
		declared: make(map[string]struct{}),
		subs:     make(map[string]*subscription),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Declare registers event names on the hub. Declaring the same name twice
// is an error; declarations are meant to happen once at bind time.
func (h *Hub) Declare(names ...string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, name := range names {
		if name == "" {
			return ErrEmptyEventName
		}
		if _, ok := h.declared[name]; ok {
			return fmt.Errorf("%w: %s", ErrEventAlreadyDeclared, name)
		}
		h.declared[name] = struct{}{}
	}
	return nil
}

// Declared returns the sorted declared event names.
func (h *Hub) Declared() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.declared))
	for name := range h.declared {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subscribe attaches a sink. With no names the sink receives every declared
// event; otherwise only the named ones, each of which must be declared. The
// returned subscription detaches the sink when cancelled.
func (h *Hub) Subscribe(sink Sink, names ...string) (*Subscription, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var filter map[string]struct{}
	if len(names) > 0 {
		filter = make(map[string]struct{}, len(names))
		for _, name := range names {
			if _, ok := h.declared[name]; !ok {
				return nil, &UndeclaredEventError{Event: name}
			}
			filter[name] = struct{}{}
		}
	}

	sub := &subscription{id: uuid.NewString(), sink: sink, names: filter}
	h.subs[sub.id] = sub
	h.logger.Debug("event.subscribe", "subscription_id", sub.id, "events", len(names))
	return &Subscription{id: sub.id, hub: h}, nil
}

// Raise forwards the event to every matching sink, synchronously and in no
// guaranteed order across sinks. Raising an undeclared event is an error.
func (h *Hub) Raise(name string, args ...any) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.declared[name]; !ok {
		return &UndeclaredEventError{Event: name}
	}

	ev := New(name, h.source, args...)
	h.logger.Debug("event.raise", "event", name, "event_id", ev.ID, "arg_count", len(args))
	for _, sub := range h.subs {
		if sub.names != nil {
			if _, ok := sub.names[name]; !ok {
				continue
			}
		}
		sub.sink.Notify(ev)
	}
	return nil
}

// Subscription is a cancellable handle to an attached sink.
type Subscription struct {
	id  string
	hub *Hub

	once sync.Once
}

// ID returns the subscription identifier.
func (s *Subscription) ID() string { return s.id }

// Cancel detaches the sink. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		delete(s.hub.subs, s.id)
		s.hub.logger.Debug("event.unsubscribe", "subscription_id", s.id)
	})
}
