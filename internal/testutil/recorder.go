package testutil

import (
	"sync"

	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/member"
)

// Recorder is a candidate stub that records its invocations and returns a
// canned result. It is safe for concurrent use.
type Recorder struct {
	preferredName string
	sig           member.Signature
	result        any
	err           error

	mu    sync.Mutex
	calls [][]any
}

// NewRecorder creates a recording candidate with the given dispatch name,
// signature and canned result.
func NewRecorder(preferredName string, sig member.Signature, result any) *Recorder {
	return &Recorder{preferredName: preferredName, sig: sig, result: result}
}

// Fail makes every invocation return err instead of the canned result
// (chainable).
func (r *Recorder) Fail(err error) *Recorder {
	r.err = err
	return r
}

// PreferredName returns the dispatch name.
func (r *Recorder) PreferredName() string { return r.preferredName }

// Signature returns the declared signature.
func (r *Recorder) Signature() member.Signature { return r.sig }

// Invoke records the call and returns the canned result.
func (r *Recorder) Invoke(_ any, _ []core.Type, args []any) (any, error) {
	r.mu.Lock()
	r.calls = append(r.calls, args)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

// Invocations returns how many times the candidate was executed.
func (r *Recorder) Invocations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Call returns the recorded arguments of invocation i.
func (r *Recorder) Call(i int) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[i]
}
