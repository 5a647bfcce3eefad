package schema_test

import (
	"reflect"
	"testing"

	"github.com/lukasiewicz/neurosym/schema"
)

func TestNewAndAddVariablePreservesOrder(t *testing.T) {
	s := schema.New()
	s.AddVariable("C", schema.Variable{Prior: 0.1})
	s.AddVariable("A", schema.Variable{Prior: 0.2})
	s.AddVariable("B", schema.Variable{Prior: 0.3})
	// Re-declaring an existing variable must not duplicate its slot.
	s.AddVariable("A", schema.Variable{Prior: 0.25})

	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(s.Order, want) {
		t.Fatalf("Order = %v, want %v", s.Order, want)
	}
	if s.Variables["A"].Prior != 0.25 {
		t.Fatalf("re-declared variable did not update: got %v", s.Variables["A"].Prior)
	}
}

func TestConstraintTargetList(t *testing.T) {
	single := schema.Constraint{Target: "x"}
	if got := single.TargetList(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("single target = %v", got)
	}
	multi := schema.Constraint{Targets: []string{"x", "y"}}
	if got := multi.TargetList(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("multi target = %v", got)
	}
	empty := schema.Constraint{}
	if got := empty.TargetList(); got != nil {
		t.Errorf("empty target = %v, want nil", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	c := schema.DefaultConfig()
	if c.MaxIterations != 100 || c.ConvergenceThreshold != 1e-3 || c.LearningRate != 0.1 || c.DampingFactor != 0.5 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}
