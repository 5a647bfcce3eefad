package logic

// Operator names the closed set of dispatchable unary/n-ary logic
// operators used by IMPLICATION rule antecedents and WEIGHTED combination.
type Operator string

// The full, closed set of dispatchable operators.
const (
	OpIdentity Operator = "IDENTITY"
	OpAnd      Operator = "AND"
	OpOr       Operator = "OR"
	OpNot      Operator = "NOT"
	OpWeighted Operator = "WEIGHTED"
)

// Clamp restricts v to the closed interval [0,1].
func Clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Not computes the Łukasiewicz negation ¬a = 1 - a.
func Not(a float64) float64 {
	return Clamp(1 - a)
}

// And computes the Łukasiewicz T-norm conjunction over any number of
// inputs: max(0, Σaᵢ - (n-1)). The empty conjunction is 1.0 (vacuous
// truth); a single input passes through unchanged. Inputs equal to 1 are
// the T-norm's identity element and are left out of the sum, so And(a, 1)
// is exactly a rather than a+1-1 with float64 rounding.
func And(a ...float64) float64 {
	sum, n := 0.0, 0
	for _, v := range a {
		if v == 1 {
			continue
		}
		sum += v
		n++
	}
	switch n {
	case 0:
		return 1.0
	case 1:
		return Clamp(sum)
	}
	return Clamp(sum - float64(n-1))
}

// Or computes the Łukasiewicz T-conorm disjunction over any number of
// inputs: min(1, Σaᵢ). The empty disjunction is 0.0; a single input
// passes through unchanged.
func Or(a ...float64) float64 {
	switch len(a) {
	case 0:
		return 0.0
	case 1:
		return Clamp(a[0])
	}
	sum := 0.0
	for _, v := range a {
		sum += v
	}
	return Clamp(sum)
}

// Implies computes the Łukasiewicz implication a -> b = min(1, 1 - a + b).
//
// Properties exercised by tests: 1->b = b, 0->b = 1, a->1 = 1, a->0 = ¬a.
func Implies(a, b float64) float64 {
	return Clamp(1 - a + b)
}

// Equivalent computes a <-> b = 1 - |a - b|.
func Equivalent(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	return Clamp(1 - d)
}

// WeightedMean computes Σ(vᵢ·wᵢ)/Σwᵢ. If the lists are empty, mismatched
// in length, or the weights sum to zero, it returns 0.5 — the neutral
// prior — rather than dividing by zero.
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 || len(values) != len(weights) {
		return 0.5
	}
	var sumW, sumVW float64
	for i, v := range values {
		sumW += weights[i]
		sumVW += v * weights[i]
	}
	if sumW == 0 {
		return 0.5
	}
	return Clamp(sumVW / sumW)
}

// Inhibit applies an ATTACK constraint: target' = target * (1 - source*w).
func Inhibit(target, source, weight float64) float64 {
	return Clamp(target * (1 - source*weight))
}

// Support applies a SUPPORT constraint: target' = target + (1-target)*source*w.
func Support(target, source, weight float64) float64 {
	return Clamp(target + (1-target)*source*weight)
}

// MutexNormalize enforces a soft mutual-exclusion budget over values: if
// their sum is already at most 1, each is returned clamped unchanged;
// otherwise every value is scaled down proportionally so the sum is
// exactly 1.
func MutexNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		out[i] = Clamp(v)
		sum += out[i]
	}
	if sum <= 1 || sum == 0 {
		return out
	}
	for i := range out {
		out[i] = out[i] / sum
	}
	return out
}

// Dispatch evaluates the named operator over inputs, optionally weighted.
//
//   - IDENTITY: first input, or 0.5 if inputs is empty.
//   - AND, OR: the corresponding T-norm/T-conorm over all inputs.
//   - NOT: negation of the first input, or 0.5 if inputs is empty.
//   - WEIGHTED: WeightedMean(inputs, weights) when weights has the same
//     length as inputs; otherwise the unweighted mean; 0.5 if inputs is
//     empty.
//
// Dispatch never panics: an operator outside the closed set returns
// ErrUnknownOperator wrapped in a *ProgrammingError. Callers that feed it
// operator strings taken straight from schema data (as the engine's rule
// evaluation does) should treat this as tolerable bad data, not a bug —
// the *ProgrammingError type only marks that the failure is in the
// dispatch table itself, not in the numeric computation.
func Dispatch(op Operator, inputs []float64, weights []float64) (float64, error) {
	switch op {
	case OpIdentity:
		if len(inputs) == 0 {
			return 0.5, nil
		}
		return Clamp(inputs[0]), nil
	case OpAnd:
		return And(inputs...), nil
	case OpOr:
		return Or(inputs...), nil
	case OpNot:
		if len(inputs) == 0 {
			return 0.5, nil
		}
		return Not(inputs[0]), nil
	case OpWeighted:
		if len(inputs) == 0 {
			return 0.5, nil
		}
		if len(weights) == len(inputs) {
			return WeightedMean(inputs, weights), nil
		}
		sum := 0.0
		for _, v := range inputs {
			sum += v
		}
		return Clamp(sum / float64(len(inputs))), nil
	default:
		return 0, &ProgrammingError{Op: string(op), Err: ErrUnknownOperator}
	}
}
