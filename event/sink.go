package event

import "sync/atomic"

// Sink receives forwarded events. Notify is called synchronously from Raise
// and must not block; long-running consumers should use a ChannelSink and
// drain it from their own goroutine.
type Sink interface {
	Notify(ev Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ev Event)

// Notify calls the wrapped function.
func (f SinkFunc) Notify(ev Event) { f(ev) }

// ChannelSink forwards events into a buffered channel without ever blocking
// the raiser: when the buffer is full the event is dropped and counted.
type ChannelSink struct {
	ch      chan Event
	dropped atomic.Uint64
}

// NewChannelSink creates a sink with the given buffer capacity (minimum 1).
func NewChannelSink(buffer int) *ChannelSink {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelSink{ch: make(chan Event, buffer)}
}

// Notify enqueues the event, dropping it when the buffer is full.
func (s *ChannelSink) Notify(ev Event) {
	select {
	case s.ch <- ev:
	default:
		s.dropped.Add(1)
	}
}

// Events returns the receive side of the sink.
func (s *ChannelSink) Events() <-chan Event { return s.ch }

// Dropped reports how many events were discarded due to a full buffer.
func (s *ChannelSink) Dropped() uint64 { return s.dropped.Load() }
