package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csimtl/csimtl/connective"
	"github.com/csimtl/csimtl/evalmtl"
	"github.com/csimtl/csimtl/monitor"
	"github.com/csimtl/csimtl/mtl"
	"github.com/csimtl/csimtl/path"
	"github.com/csimtl/csimtl/trace"
)

func atomAt(t *testing.T, segments ...string) path.Atom {
	t.Helper()
	p, err := path.New(segments...)
	require.NoError(t, err)

	return path.NewAtom(p)
}

func TestAddAndUnionDeduplicate(t *testing.T) {
	a := atomAt(t, "a")
	phi := mtl.Atomic(a)

	m := monitor.New(phi)
	m2 := m.Add(phi)
	assert.Len(t, m2.Conditions(), 1, "adding a structurally-identical formula does not duplicate it")

	other := monitor.New(phi)
	union := m.Union(other)
	assert.Len(t, union.Conditions(), 1)
}

func TestAtomsAcrossAllConditions(t *testing.T) {
	a := atomAt(t, "a")
	b := atomAt(t, "b")
	m := monitor.New(mtl.Atomic(a), mtl.Atomic(b))

	atoms := m.Atoms(nil)
	require.Len(t, atoms, 2)
	assert.Equal(t, "a", atoms[0].Path().Display())
	assert.Equal(t, "b", atoms[1].Path().Display())
}

func TestExtractBooleanPredicatesDropsEqualityDominatedByLessThan(t *testing.T) {
	x := atomAt(t, "x")
	y := atomAt(t, "y")
	lt := mtl.LessThan(mtl.AtomOperand(x), mtl.AtomOperand(y))
	eq := mtl.EqualWithin(mtl.AtomOperand(x), mtl.AtomOperand(y))
	formula := mtl.OrOf(lt, eq)

	m := monitor.New(formula)
	preds := m.ExtractBooleanPredicates()

	require.Len(t, preds, 1)
	_, isCmp := preds[0].(mtl.Cmp)
	require.True(t, isCmp)
	assert.Equal(t, mtl.Lt, preds[0].(mtl.Cmp).Op)
}

func TestExtractBooleanPredicatesRemovesAtomsUsedInComparisons(t *testing.T) {
	x := atomAt(t, "x")
	y := atomAt(t, "y")
	lt := mtl.LessThan(mtl.AtomOperand(x), mtl.AtomOperand(y))

	m := monitor.New(mtl.AndOf(mtl.Atomic(x), lt))
	preds := m.ExtractBooleanPredicates()
	require.Len(t, preds, 1)
	_, isCmp := preds[0].(mtl.Cmp)
	assert.True(t, isCmp)
}

func TestExtractBooleanPredicatesKeepsIndependentAtoms(t *testing.T) {
	a := atomAt(t, "a")
	m := monitor.New(mtl.Atomic(a))
	preds := m.ExtractBooleanPredicates()
	require.Len(t, preds, 1)
	_, isAtomic := preds[0].(mtl.AtomicPred)
	assert.True(t, isAtomic)
}

func TestEvaluateUndecidableWhenAtomMissing(t *testing.T) {
	a := atomAt(t, "a")
	m := monitor.New(mtl.Atomic(a))
	tr := trace.New()

	results, err := m.Evaluate(tr, connective.Default(), evalmtl.DefaultOptions(), evalmtl.At(0))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, evalmtl.Undecidable, results[0].Verdict)
}

func TestEvaluateDecidesWhenAtomsPresent(t *testing.T) {
	damaged := atomAt(t, "equipment", "damaged")
	tr := trace.New()
	tr.Set(damaged.Path(), 0, true)

	m := monitor.New(mtl.Atomic(damaged))
	conn := connective.Default()
	results, err := m.Evaluate(tr, conn, evalmtl.DefaultOptions(), evalmtl.At(0))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, conn.GreaterOrEqualTrue(results[0].Verdict.Value))
}

func TestEvaluateOneNonPositiveDt(t *testing.T) {
	a := atomAt(t, "a")
	m := monitor.New(mtl.Atomic(a))
	tr := trace.New()
	tr.Set(a.Path(), 0, true)

	_, err := m.EvaluateOne(mtl.Atomic(a), tr, connective.Default(), evalmtl.Options{Dt: 0, EqTolerance: 1e-9}, evalmtl.At(0))
	require.ErrorIs(t, err, monitor.ErrNonPositiveDt)
}

func TestEvaluateOneRejectsFullTime(t *testing.T) {
	a := atomAt(t, "a")
	m := monitor.New(mtl.Atomic(a))
	tr := trace.New()
	tr.Set(a.Path(), 0, true)

	_, err := m.EvaluateOne(mtl.Atomic(a), tr, connective.Default(), evalmtl.DefaultOptions(), evalmtl.Full())
	require.ErrorIs(t, err, monitor.ErrFullTimeUnsupported)
}

func TestEvaluateRejectsFullTime(t *testing.T) {
	a := atomAt(t, "a")
	m := monitor.New(mtl.Atomic(a))
	tr := trace.New()
	tr.Set(a.Path(), 0, true)

	_, err := m.Evaluate(tr, connective.Default(), evalmtl.DefaultOptions(), evalmtl.Full())
	require.ErrorIs(t, err, monitor.ErrFullTimeUnsupported)
}

func TestHazardAndUCACatalogueTypes(t *testing.T) {
	damaged := atomAt(t, "equipment", "damaged")
	active := atomAt(t, "welder", "active")
	hazard := monitor.Hazard{
		SafetyCondition: monitor.SafetyCondition{
			UID:       "H1",
			Condition: mtl.AlwaysOf(mtl.ImpliesOf(mtl.Atomic(damaged), mtl.NotOf(mtl.Atomic(active))), mtl.FromZero()),
		},
		Description: "welder must stop when equipment is damaged",
	}
	assert.Equal(t, "H1", hazard.UID)

	uca := monitor.UnsafeControlAction{
		SafetyCondition: monitor.SafetyCondition{UID: "UCA1", Condition: mtl.Atomic(active)},
		Description:     "welder active without a secured part",
		Cause:           monitor.NotProviding,
		HasCause:        true,
	}
	assert.Equal(t, "not-providing", uca.Cause.String())
}
