package logic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lukasiewicz/neurosym/logic"
)

const tol = 1e-3

func near(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := logic.Clamp(c.in); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNot(t *testing.T) {
	if !near(logic.Not(0.3), 0.7) {
		t.Errorf("Not(0.3) = %v, want ~0.7", logic.Not(0.3))
	}
	if logic.Not(0) != 1 || logic.Not(1) != 0 {
		t.Errorf("Not boundary values wrong: Not(0)=%v Not(1)=%v", logic.Not(0), logic.Not(1))
	}
}

func TestAnd(t *testing.T) {
	if got := logic.And(); got != 1.0 {
		t.Errorf("empty And() = %v, want 1.0", got)
	}
	if got := logic.And(0.7); got != 0.7 {
		t.Errorf("single And(0.7) = %v, want 0.7", got)
	}
	if got := logic.And(1, 1); got != 1.0 {
		t.Errorf("And(1,1) = %v, want 1", got)
	}
	if got := logic.And(0, 1); got != 0.0 {
		t.Errorf("And(0,1) = %v, want 0", got)
	}
	if got := logic.And(0.8, 0.9); !near(got, 0.7) {
		t.Errorf("And(0.8,0.9) = %v, want ~0.7", got)
	}
	if got := logic.And(1, 0.4); got != 0.4 {
		t.Errorf("And(a,1) identity failed: got %v", got)
	}
}

func TestOr(t *testing.T) {
	if got := logic.Or(); got != 0.0 {
		t.Errorf("empty Or() = %v, want 0.0", got)
	}
	if got := logic.Or(0.7); got != 0.7 {
		t.Errorf("single Or(0.7) = %v, want 0.7", got)
	}
	if got := logic.Or(0, 0); got != 0.0 {
		t.Errorf("Or(0,0) = %v, want 0", got)
	}
	if got := logic.Or(1, 1); got != 1.0 {
		t.Errorf("Or(1,1) = %v, want 1", got)
	}
	if got := logic.Or(0.3, 0.4); !near(got, 0.7) {
		t.Errorf("Or(0.3,0.4) = %v, want ~0.7", got)
	}
	if got := logic.Or(0.3, 0); got != 0.3 {
		t.Errorf("Or(a,0) identity failed: got %v", got)
	}
}

func TestImplies(t *testing.T) {
	if logic.Implies(0, 0.42) != 1.0 {
		t.Errorf("implies(0,b) should be 1")
	}
	if logic.Implies(1, 0.42) != 0.42 {
		t.Errorf("implies(1,b) should be b")
	}
	if logic.Implies(0.3, 1) != 1.0 {
		t.Errorf("implies(a,1) should be 1")
	}
	if got, want := logic.Implies(0.3, 0), logic.Not(0.3); got != want {
		t.Errorf("implies(a,0) should equal not(a): got %v want %v", got, want)
	}
	if got := logic.Implies(0.8, 0.5); !near(got, 0.7) {
		t.Errorf("implies(0.8,0.5) = %v, want ~0.7", got)
	}
}

func TestEquivalent(t *testing.T) {
	if logic.Equivalent(0.42, 0.42) != 1.0 {
		t.Errorf("equivalent(a,a) should be 1")
	}
	if got := logic.Equivalent(0.2, 0.9); !near(got, 0.3) {
		t.Errorf("equivalent(0.2,0.9) = %v, want ~0.3", got)
	}
}

func TestWeightedMean(t *testing.T) {
	if got := logic.WeightedMean(nil, nil); got != 0.5 {
		t.Errorf("empty WeightedMean = %v, want 0.5", got)
	}
	if got := logic.WeightedMean([]float64{1, 0}, []float64{0, 0}); got != 0.5 {
		t.Errorf("zero-weight WeightedMean = %v, want 0.5", got)
	}
	if got := logic.WeightedMean([]float64{1, 0}, []float64{1}); got != 0.5 {
		t.Errorf("mismatched-length WeightedMean = %v, want 0.5", got)
	}
	if got := logic.WeightedMean([]float64{1, 0}, []float64{1, 1}); got != 0.5 {
		t.Errorf("balanced WeightedMean = %v, want 0.5", got)
	}
	if got := logic.WeightedMean([]float64{1, 0}, []float64{3, 1}); !near(got, 0.75) {
		t.Errorf("WeightedMean = %v, want ~0.75", got)
	}
}

func TestInhibitAndSupport(t *testing.T) {
	if got := logic.Inhibit(0.7, 0.8, 1.0); !near(got, 0.14) {
		t.Errorf("Inhibit(0.7,0.8,1.0) = %v, want ~0.14", got)
	}
	if got := logic.Inhibit(0.7, 0, 1.0); got != 0.7 {
		t.Errorf("Inhibit with zero source should be a no-op: got %v", got)
	}
	if got := logic.Support(0.1, 1.0, 1.0); got != 1.0 {
		t.Errorf("Support(0.1,1.0,1.0) = %v, want 1.0", got)
	}
	if got := logic.Support(0.1, 0, 1.0); got != 0.1 {
		t.Errorf("Support with zero source should be a no-op: got %v", got)
	}
}

func TestMutexNormalize(t *testing.T) {
	under := logic.MutexNormalize([]float64{0.2, 0.3})
	if !near(under[0], 0.2) || !near(under[1], 0.3) {
		t.Errorf("under-budget values changed: got %v", under)
	}
	over := logic.MutexNormalize([]float64{0.6, 0.6})
	sum := over[0] + over[1]
	if !near(sum, 1.0) {
		t.Errorf("over-budget values did not renormalize to 1: got %v (sum %v)", over, sum)
	}
	if !near(over[0], over[1]) {
		t.Errorf("equal inputs should stay equal after normalization: got %v", over)
	}
}

func TestDispatch(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		v, err := logic.Dispatch(logic.OpIdentity, []float64{0.42, 0.9}, nil)
		if err != nil || v != 0.42 {
			t.Errorf("IDENTITY = %v, %v; want 0.42, nil", v, err)
		}
		v, err = logic.Dispatch(logic.OpIdentity, nil, nil)
		if err != nil || v != 0.5 {
			t.Errorf("empty IDENTITY = %v, %v; want 0.5, nil", v, err)
		}
	})
	t.Run("and-or-not", func(t *testing.T) {
		if v, _ := logic.Dispatch(logic.OpAnd, []float64{0.8, 0.9}, nil); !near(v, 0.7) {
			t.Errorf("AND dispatch = %v", v)
		}
		if v, _ := logic.Dispatch(logic.OpOr, []float64{0.3, 0.4}, nil); !near(v, 0.7) {
			t.Errorf("OR dispatch = %v", v)
		}
		if v, _ := logic.Dispatch(logic.OpNot, []float64{0.3}, nil); !near(v, 0.7) {
			t.Errorf("NOT dispatch = %v", v)
		}
		if v, _ := logic.Dispatch(logic.OpNot, nil, nil); v != 0.5 {
			t.Errorf("empty NOT dispatch = %v, want 0.5", v)
		}
	})
	t.Run("weighted", func(t *testing.T) {
		v, _ := logic.Dispatch(logic.OpWeighted, []float64{1, 0}, []float64{3, 1})
		if !near(v, 0.75) {
			t.Errorf("WEIGHTED dispatch = %v, want ~0.75", v)
		}
		v, _ = logic.Dispatch(logic.OpWeighted, []float64{1, 0}, nil)
		if !near(v, 0.5) {
			t.Errorf("WEIGHTED unweighted fallback = %v, want ~0.5", v)
		}
		v, _ = logic.Dispatch(logic.OpWeighted, nil, nil)
		if v != 0.5 {
			t.Errorf("empty WEIGHTED dispatch = %v, want 0.5", v)
		}
	})
	t.Run("unknown operator is a programming error", func(t *testing.T) {
		_, err := logic.Dispatch(logic.Operator("BOGUS"), []float64{1}, nil)
		if !errors.Is(err, logic.ErrUnknownOperator) {
			t.Fatalf("want ErrUnknownOperator, got %v", err)
		}
		var pe *logic.ProgrammingError
		if !errors.As(err, &pe) {
			t.Fatalf("want *ProgrammingError, got %T", err)
		}
	})
}
