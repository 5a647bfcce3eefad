package schema_test

import (
	"testing"

	"github.com/lukasiewicz/neurosym/schema"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	doc := map[string]interface{}{
		"version": "1.0",
		"variables": map[string]interface{}{
			"A": map[string]interface{}{"type": "bool", "prior": 0.3},
			"B": map[string]interface{}{"type": "bool", "prior": 0.1},
		},
		"rules": []interface{}{
			map[string]interface{}{
				"id": "a_to_b", "type": "IMPLICATION",
				"inputs": []interface{}{"A"}, "output": "B",
				"op": "IDENTITY", "weight": 0.9, "learnable": true,
			},
		},
		"constraints": []interface{}{},
	}

	s, err := schema.FromMap(doc)
	require.NoError(t, err)
	require.Equal(t, "1.0", s.Version)
	require.Len(t, s.Variables, 2)
	require.InDelta(t, 0.3, s.Variables["A"].Prior, 1e-9)
	require.Len(t, s.Rules, 1)
	require.Equal(t, "a_to_b", s.Rules[0].ID)
	require.Equal(t, []string{"A", "B"}, s.Order)

	ok, verr := schema.Validate(s)
	require.True(t, ok)
	require.NoError(t, verr)
}

func TestFromMapAppliesDocumentedDefaults(t *testing.T) {
	doc := map[string]interface{}{
		"version": "1.0",
		"variables": map[string]interface{}{
			"a": map[string]interface{}{"type": "bool"},
		},
		"rules": []interface{}{
			map[string]interface{}{
				"id": "r1", "type": "IMPLICATION",
				"inputs": []interface{}{"a"}, "output": "a",
			},
		},
		"constraints": []interface{}{
			map[string]interface{}{"id": "c1", "type": "SUPPORT", "source": "a", "target": "a"},
		},
		"config": map[string]interface{}{"learning_rate": 0.2},
	}

	s, err := schema.FromMap(doc)
	require.NoError(t, err)
	require.InDelta(t, 0.5, s.Variables["a"].Prior, 1e-9)
	require.InDelta(t, 1.0, s.Rules[0].Weight, 1e-9)
	require.True(t, s.Rules[0].Learnable)
	require.InDelta(t, 1.0, s.Constraints[0].Weight, 1e-9)
	require.InDelta(t, 0.2, s.Config.LearningRate, 1e-9)
	require.Equal(t, 100, s.Config.MaxIterations)
}

func TestValidateAggregatesErrors(t *testing.T) {
	s := &schema.Schema{
		Variables: map[string]schema.Variable{
			"bad": {Type: "weird", Prior: 2.0},
		},
		Rules: []schema.Rule{
			{ID: "", Type: "NOPE", Weight: -1},
		},
		Constraints: []schema.Constraint{
			{ID: "c1", Kind: "ODD"},
		},
	}
	ok, err := schema.Validate(s)
	require.False(t, ok)
	require.Error(t, err)
	require.Contains(t, err.Error(), "version")
	require.Contains(t, err.Error(), "variables.bad.type")
	require.Contains(t, err.Error(), "rules[0]")
	require.Contains(t, err.Error(), "constraints[0].type")
}
