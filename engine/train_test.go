package engine_test

import (
	"testing"

	"github.com/lukasiewicz/neurosym/engine"
	"github.com/lukasiewicz/neurosym/schema"
	"github.com/stretchr/testify/require"
)

// scenario 4: 50 epochs of a single (input: 1.0) -> (output: 0.95)
// example strictly increases a learnable rule's weight from 0.5.
func TestTrainIncreasesLearnableWeight(t *testing.T) {
	s := schema.New()
	s.AddVariable("input", schema.Variable{Prior: 0.5})
	s.AddVariable("output", schema.Variable{Prior: 0.5})
	s.AddRule(schema.Rule{
		ID: "r1", Type: schema.Implication,
		Inputs: []string{"input"}, Output: "output",
		Op: "IDENTITY", Weight: 0.5, Learnable: true,
	})

	e := engine.New(s)
	examples := []engine.TrainingExample{
		{Inputs: engine.Evidence{"input": 1.0}, Targets: map[string]float64{"output": 0.95}},
	}
	e.Train(examples, 50)

	w, ok := e.GetRuleWeight("r1")
	require.True(t, ok)
	require.Greater(t, w, 0.5)
}

func TestTrainNonLearnableRuleUntouched(t *testing.T) {
	s := schema.New()
	s.AddVariable("input", schema.Variable{Prior: 0.5})
	s.AddVariable("output", schema.Variable{Prior: 0.5})
	s.AddRule(schema.Rule{
		ID: "r1", Type: schema.Implication,
		Inputs: []string{"input"}, Output: "output",
		Op: "IDENTITY", Weight: 0.5, Learnable: false,
	})

	e := engine.New(s)
	examples := []engine.TrainingExample{
		{Inputs: engine.Evidence{"input": 1.0}, Targets: map[string]float64{"output": 0.99}},
	}
	e.Train(examples, 20)

	w, ok := e.GetRuleWeight("r1")
	require.True(t, ok)
	require.Equal(t, 0.5, w)
}

func TestTrainOnEmptyExamplesReturnsZero(t *testing.T) {
	s := schema.New()
	s.AddVariable("a", schema.Variable{Prior: 0.5})
	e := engine.New(s)
	require.Equal(t, 0.0, e.Train(nil, 10))
}

func TestTrainStopsEarlyBelowLossThreshold(t *testing.T) {
	s := schema.New()
	s.AddVariable("input", schema.Variable{Prior: 0.9})
	s.AddVariable("output", schema.Variable{Prior: 0.9})
	s.AddRule(schema.Rule{
		ID: "r1", Type: schema.Implication,
		Inputs: []string{"input"}, Output: "output",
		Op: "IDENTITY", Weight: 1.0, Learnable: true,
	})

	e := engine.New(s)
	examples := []engine.TrainingExample{
		{Inputs: engine.Evidence{"input": 0.9}, Targets: map[string]float64{"output": 0.9}},
	}
	loss := e.Train(examples, 1000)
	require.Less(t, loss, 1e-3)
}
