package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_DeclareAndDeclared(t *testing.T) {
	h := NewHub(nil)
	assert.NoError(t, h.Declare("Changed", "Closed"))
	assert.Equal(t, []string{"Changed", "Closed"}, h.Declared())

	assert.ErrorIs(t, h.Declare("Changed"), ErrEventAlreadyDeclared)
	assert.ErrorIs(t, h.Declare(""), ErrEmptyEventName)
}

func TestHub_RaiseForwardsToAllSinks(t *testing.T) {
	source := &struct{ name string }{name: "lamp"}
	h := NewHub(source)
	assert.NoError(t, h.Declare("Changed"))

	var got []Event
	_, err := h.Subscribe(SinkFunc(func(ev Event) { got = append(got, ev) }))
	assert.NoError(t, err)

	assert.NoError(t, h.Raise("Changed", "red", 42))

	assert.Len(t, got, 1)
	assert.Equal(t, "Changed", got[0].Name)
	assert.Equal(t, source, got[0].Source)
	assert.Equal(t, []any{"red", 42}, got[0].Args)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestHub_NamedSubscriptionFilters(t *testing.T) {
	h := NewHub(nil)
	assert.NoError(t, h.Declare("Changed", "Closed"))

	var changed, all int
	_, err := h.Subscribe(SinkFunc(func(Event) { changed++ }), "Changed")
	assert.NoError(t, err)
	_, err = h.Subscribe(SinkFunc(func(Event) { all++ }))
	assert.NoError(t, err)

	assert.NoError(t, h.Raise("Changed"))
	assert.NoError(t, h.Raise("Closed"))

	assert.Equal(t, 1, changed)
	assert.Equal(t, 2, all)
}

func TestHub_UndeclaredEvents(t *testing.T) {
	h := NewHub(nil)
	assert.NoError(t, h.Declare("Changed"))

	err := h.Raise("Closed")
	var undeclared *UndeclaredEventError
	assert.ErrorAs(t, err, &undeclared)
	assert.Equal(t, "Closed", undeclared.Event)

	_, err = h.Subscribe(SinkFunc(func(Event) {}), "Closed")
	assert.ErrorAs(t, err, &undeclared)
}

func TestHub_NilSink(t *testing.T) {
	h := NewHub(nil)
	_, err := h.Subscribe(nil)
	assert.ErrorIs(t, err, ErrNilSink)
}

func TestSubscription_Cancel(t *testing.T) {
	h := NewHub(nil)
	assert.NoError(t, h.Declare("Changed"))

	var n int
	sub, err := h.Subscribe(SinkFunc(func(Event) { n++ }))
	assert.NoError(t, err)
	assert.NotEmpty(t, sub.ID())

	assert.NoError(t, h.Raise("Changed"))
	sub.Cancel()
	sub.Cancel() // idempotent
	assert.NoError(t, h.Raise("Changed"))

	assert.Equal(t, 1, n)
}

func TestChannelSink_ForwardsAndDrops(t *testing.T) {
	h := NewHub(nil)
	assert.NoError(t, h.Declare("Tick"))

	sink := NewChannelSink(2)
	_, err := h.Subscribe(sink)
	assert.NoError(t, err)

	assert.NoError(t, h.Raise("Tick"))
	assert.NoError(t, h.Raise("Tick"))
	// Buffer full: the raiser never blocks, the event is dropped.
	assert.NoError(t, h.Raise("Tick"))

	assert.Equal(t, uint64(1), sink.Dropped())
	assert.Len(t, sink.Events(), 2)

	ev := <-sink.Events()
	assert.Equal(t, "Tick", ev.Name)
}

func TestHub_ConcurrentRaiseAndSubscribe(t *testing.T) {
	h := NewHub(nil)
	assert.NoError(t, h.Declare("Tick"))

	var mu sync.Mutex
	var n int

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub, err := h.Subscribe(SinkFunc(func(Event) {
				mu.Lock()
				n++
				mu.Unlock()
			}))
			assert.NoError(t, err)
			assert.NoError(t, h.Raise("Tick"))
			sub.Cancel()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, n, 16)
}
