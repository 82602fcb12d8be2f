package dispatch

import (
	"testing"

	"github.com/hupe1980/dynabind/core"
	"github.com/hupe1980/dynabind/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var (
	intT    = core.TypeOf[int]()
	int32T  = core.TypeOf[int32]()
	int64T  = core.TypeOf[int64]()
	floatT  = core.TypeOf[float64]()
	stringT = core.TypeOf[string]()
)

// -------------------- Gate Tests --------------------

func TestScore_NameGate(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Add").Param(intT).Build()

	assert.Equal(t, NoMatch, Score("Add", sig, NewCall("Sub", 0, 1)))
	// Arguments are irrelevant once the name differs.
	assert.Equal(t, NoMatch, Score("Add", sig, NewCall("Sub", 0)))
	assert.Equal(t, NoMatch, Score("Add", sig, NewCall("Sub", 0, "x", "y")))
}

func TestScore_PreferredNameWinsOverInternalName(t *testing.T) {
	// The signature's internal name plays no part in matching.
	sig := testutil.NewSignatureBuilder("TxAdd").Param(intT).Build()

	assert.Equal(t, 0, Score("add", sig, NewCall("add", 0, 1)))
	assert.Equal(t, NoMatch, Score("add", sig, NewCall("TxAdd", 0, 1)))
}

func TestScore_GenericArityGate(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Map").Generics(1).Param(intT).Build()

	assert.Equal(t, NoMatch, Score("Map", sig, NewCall("Map", 0, 1)))
	assert.Equal(t, NoMatch, Score("Map", sig, NewCall("Map", 2, 1)))
	assert.Equal(t, 0, Score("Map", sig, NewCall("Map", 1, 1)))
}

func TestScore_ArityCeiling(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Add").Param(intT).Param(intT).Build()

	assert.Equal(t, NoMatch, Score("Add", sig, NewCall("Add", 0, 1, 2, 3)))
}

// -------------------- Provided Parameter Tests --------------------

func TestScore_ExactMatchIsZero(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Add").Param(intT).Param(stringT).Param(floatT).Build()

	assert.Equal(t, 0, Score("Add", sig, NewCall("Add", 0, 1, "x", 2.5)))
}

func TestScore_EachConversionAddsOneUnit(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Add").Param(floatT).Param(floatT).Param(floatT).Build()

	// One converting argument.
	assert.Equal(t, 1, Score("Add", sig, NewCall("Add", 0, int32(1), 2.0, 3.0)))
	// Conversion costs sum across parameters.
	assert.Equal(t, 3, Score("Add", sig, NewCall("Add", 0, int32(1), int32(2), int32(3))))
}

func TestScore_IncompatibleArgument(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Add").Param(intT).Build()

	assert.Equal(t, NoMatch, Score("Add", sig, NewCall("Add", 0, "one")))
}

func TestScore_NullArguments(t *testing.T) {
	nonNullable := testutil.NewSignatureBuilder("Set").Param(intT).Build()
	assert.Equal(t, NoMatch, Score("Set", nonNullable, NewCall("Set", 0, nil)))

	wrapped := testutil.NewSignatureBuilder("Set").Param(core.NullableOf(intT)).Build()
	assert.Equal(t, NullableCost, Score("Set", wrapped, NewCall("Set", 0, nil)))

	pointer := testutil.NewSignatureBuilder("Set").Param(core.TypeOf[*int]()).Build()
	assert.Equal(t, NullableCost, Score("Set", pointer, NewCall("Set", 0, nil)))
}

// -------------------- Optional Parameter Tests --------------------

func TestScore_OmittedOptionalDominatesConversions(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Log").
		Param(floatT).Param(floatT).Optional(stringT).Build()

	// One omitted optional costs 1000 regardless of the rest.
	assert.Equal(t, OptionalCost, Score("Log", sig, NewCall("Log", 0, 1.0, 2.0)))
	assert.Equal(t, OptionalCost+2, Score("Log", sig, NewCall("Log", 0, int32(1), int32(2))))
}

func TestScore_SuppliedOptionalScoresAsProvided(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Log").Param(intT).Optional(stringT).Build()

	assert.Equal(t, 0, Score("Log", sig, NewCall("Log", 0, 1, "msg")))
}

func TestScore_OmittedRequiredIsNoMatch(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Add").Param(intT).Param(intT).Build()

	assert.Equal(t, NoMatch, Score("Add", sig, NewCall("Add", 0, 1)))
}

// -------------------- Variadic Tail Tests --------------------

func TestScore_VariadicBindsZeroOneOrMany(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Join").Param(stringT).Variadic(stringT).Build()

	assert.Equal(t, 0, Score("Join", sig, NewCall("Join", 0, "-")))
	assert.Equal(t, 0, Score("Join", sig, NewCall("Join", 0, "-", "a")))
	assert.Equal(t, 0, Score("Join", sig, NewCall("Join", 0, "-", "a", "b", "c")))
}

func TestScore_VariadicElementsScoreIndividually(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Sum").Variadic(floatT).Build()

	assert.Equal(t, 0, Score("Sum", sig, NewCall("Sum", 0, 1.0, 2.0)))
	assert.Equal(t, 2, Score("Sum", sig, NewCall("Sum", 0, int32(1), int32(2), 3.0)))
	// A single inconvertible element rejects the whole candidate at
	// scoring time.
	assert.Equal(t, NoMatch, Score("Sum", sig, NewCall("Sum", 0, 1.0, "two")))
}

func TestScore_VariadicNullElements(t *testing.T) {
	nullable := testutil.NewSignatureBuilder("All").Variadic(core.TypeOf[*int]()).Build()
	assert.Equal(t, NullableCost, Score("All", nullable, NewCall("All", 0, nil)))

	plain := testutil.NewSignatureBuilder("All").Variadic(intT).Build()
	assert.Equal(t, NoMatch, Score("All", plain, NewCall("All", 0, nil)))
}

// -------------------- Generic Placeholder Tests --------------------

func TestScore_PlaceholderBindingIsFree(t *testing.T) {
	// Binding is free even when a real conversion to the constraint would
	// be needed; the concrete type is substituted after selection.
	sig := testutil.NewSignatureBuilder("Sum").Generics(1).
		Param(core.Generic("T", floatT)).Build()

	assert.Equal(t, 0, Score("Sum", sig, NewCall("Sum", 1, int32(5))))
	assert.Equal(t, 0, Score("Sum", sig, NewCall("Sum", 1, 2.5)))
	// The constraint still gates outright incompatibility.
	assert.Equal(t, NoMatch, Score("Sum", sig, NewCall("Sum", 1, "x")))
}

func TestScore_UnconstrainedPlaceholderAcceptsNil(t *testing.T) {
	sig := testutil.NewSignatureBuilder("Box").Generics(1).
		Param(core.Generic("T", nil)).Build()

	assert.Equal(t, NullableCost, Score("Box", sig, NewCall("Box", 1, nil)))
	assert.Equal(t, 0, Score("Box", sig, NewCall("Box", 1, "anything")))
}

// -------------------- Widening Preference Tests --------------------

func TestScore_ExactOverloadBeatsConverting(t *testing.T) {
	exact := testutil.NewSignatureBuilder("Add").Param(int32T).Param(int32T).Build()
	widening := testutil.NewSignatureBuilder("Add").Param(int64T).Param(int64T).Build()

	call := NewCall("Add", 0, int32(1), int32(2))
	assert.Less(t, Score("Add", exact, call), Score("Add", widening, call))
}
