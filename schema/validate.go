package schema

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var validRuleTypes = map[RuleType]bool{
	Implication: true,
	Conjunction: true,
	Disjunction: true,
	Equivalence: true,
}

var validConstraintKinds = map[ConstraintKind]bool{
	Attack:  true,
	Support: true,
	Mutex:   true,
}

var validVariableKinds = map[VariableKind]bool{
	KindBool:       true,
	KindContinuous: true,
	"":             true, // type is optional
}

// Validate checks a Schema's advisory well-formedness rules: variable
// types and priors, rule shapes and weights, constraint kinds. It returns
// ok=false together with every violation found, aggregated into a single
// *multierror.Error (nil when ok is true). Validation is advisory only —
// the engine itself tolerates everything Validate flags.
func Validate(s *Schema) (bool, error) {
	var result *multierror.Error

	if s == nil {
		return false, multierror.Append(result, fmt.Errorf("schema: nil schema"))
	}
	if s.Version == "" {
		result = multierror.Append(result, fmt.Errorf("version: must be a non-empty string"))
	}
	if s.Variables == nil {
		result = multierror.Append(result, fmt.Errorf("variables: must be present"))
	}
	for name, v := range s.Variables {
		if !validVariableKinds[v.Type] {
			result = multierror.Append(result, fmt.Errorf("variables.%s.type: must be 'bool' or 'continuous', got %q", name, v.Type))
		}
		if v.Prior < 0 || v.Prior > 1 {
			result = multierror.Append(result, fmt.Errorf("variables.%s.prior: must be in [0,1], got %v", name, v.Prior))
		}
	}

	seenRuleIDs := make(map[string]bool, len(s.Rules))
	for i, r := range s.Rules {
		if r.ID == "" {
			result = multierror.Append(result, fmt.Errorf("rules[%d].id: must be a non-empty string", i))
		} else if seenRuleIDs[r.ID] {
			result = multierror.Append(result, fmt.Errorf("rules[%d].id: duplicate rule id %q", i, r.ID))
		}
		seenRuleIDs[r.ID] = true

		if !validRuleTypes[r.Type] {
			result = multierror.Append(result, fmt.Errorf("rules[%d].type: must be one of IMPLICATION/EQUIVALENCE/CONJUNCTION/DISJUNCTION, got %q", i, r.Type))
		}
		if r.Inputs == nil {
			result = multierror.Append(result, fmt.Errorf("rules[%d].inputs: must be a list", i))
		}
		if r.Output == "" {
			result = multierror.Append(result, fmt.Errorf("rules[%d].output: must be a non-empty string", i))
		}
		if r.Weight < 0 || r.Weight > 1 {
			result = multierror.Append(result, fmt.Errorf("rules[%d].weight: must be in [0,1], got %v", i, r.Weight))
		}
	}

	seenConstraintIDs := make(map[string]bool, len(s.Constraints))
	for i, c := range s.Constraints {
		if c.ID == "" {
			result = multierror.Append(result, fmt.Errorf("constraints[%d].id: must be a non-empty string", i))
		} else if seenConstraintIDs[c.ID] {
			result = multierror.Append(result, fmt.Errorf("constraints[%d].id: duplicate constraint id %q", i, c.ID))
		}
		seenConstraintIDs[c.ID] = true

		if !validConstraintKinds[c.Kind] {
			result = multierror.Append(result, fmt.Errorf("constraints[%d].type: must be one of ATTACK/SUPPORT/MUTEX, got %q", i, c.Kind))
		}
	}

	if result == nil {
		return true, nil
	}
	result.ErrorFormat = func(errs []error) string {
		s := fmt.Sprintf("%d validation error(s):", len(errs))
		for _, e := range errs {
			s += "\n  * " + e.Error()
		}
		return s
	}
	return false, result
}
