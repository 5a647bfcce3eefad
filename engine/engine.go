package engine

import (
	"github.com/hashicorp/go-hclog"
	"github.com/lukasiewicz/neurosym/logic"
	"github.com/lukasiewicz/neurosym/schema"
)

// Engine owns the mutable per-variable state and rule-weight table
// derived from an immutable *schema.Schema, plus the output/input rule
// indexes that let the forward pass look up a variable's contributing
// rules without a linear scan.
//
// Engine is not safe for concurrent mutation: concurrent Run or Train
// calls on one instance are undefined, and a concurrent ExportState read
// must be externally synchronized by the caller while Run/Train is in
// flight. Distinct Engine instances over distinct schemas are fully
// independent.
type Engine struct {
	schema *schema.Schema
	config schema.Config
	log    hclog.Logger

	order       []string
	nameToIndex map[string]int
	states      []variableState

	rules       []schema.Rule
	ruleWeights []float64
	ruleIDIndex map[string]int

	constraints []schema.Constraint

	outputRuleIdx map[string][]int // variable name -> rule indices naming it as output
	inputRuleIdx  map[string][]int // variable name -> rule indices naming it as an input
}

// New constructs an Engine from s, building the indexes and initializing
// every variable's state to its declared prior and locked flag. The
// schema's own Config is used unless overridden by an Option.
func New(s *schema.Schema, opts ...Option) *Engine {
	e := &Engine{
		schema:      s,
		config:      s.Config,
		log:         hclog.NewNullLogger(),
		nameToIndex: make(map[string]int, len(s.Order)),
		ruleIDIndex: make(map[string]int, len(s.Rules)),

		outputRuleIdx: make(map[string][]int),
		inputRuleIdx:  make(map[string][]int),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.order = append([]string(nil), s.Order...)
	e.states = make([]variableState, len(e.order))
	for i, name := range e.order {
		e.nameToIndex[name] = i
	}

	e.rules = append([]schema.Rule(nil), s.Rules...)
	e.ruleWeights = make([]float64, len(e.rules))
	for i, r := range e.rules {
		e.ruleIDIndex[r.ID] = i
		e.ruleWeights[i] = r.Weight
		for _, in := range r.Inputs {
			if _, ok := e.nameToIndex[in]; ok {
				e.inputRuleIdx[in] = append(e.inputRuleIdx[in], i)
			}
		}
		if _, ok := e.nameToIndex[r.Output]; ok {
			e.outputRuleIdx[r.Output] = append(e.outputRuleIdx[r.Output], i)
		}
	}

	e.constraints = append([]schema.Constraint(nil), s.Constraints...)

	e.resetToPriors()
	return e
}

// resetToPriors restores every variable's value and locked flag from the
// schema declaration, leaving the engine in the same state as a freshly
// constructed one over the same schema.
func (e *Engine) resetToPriors() {
	for i, name := range e.order {
		v := e.schema.Variables[name]
		e.states[i] = variableState{value: logic.Clamp(v.Prior), locked: v.Locked}
	}
}

// Evidence maps variable (or, via the bridge, node) names to the truth
// value they are clamped to for one inference run.
type Evidence map[string]float64

// Run resets state to priors, locks any evidence, then alternates the
// forward pass and the constraint pass until the maximum delta observed
// across both passes in one iteration drops below the convergence
// threshold, or the larger of iterations and config.MaxIterations is
// reached.
// It returns every declared variable's final value.
func (e *Engine) Run(evidence Evidence, iterations int) map[string]float64 {
	e.resetToPriors()

	for name, v := range evidence {
		if idx, ok := e.nameToIndex[name]; ok {
			e.states[idx].value = logic.Clamp(v)
			e.states[idx].locked = true
		}
	}

	maxIter := e.config.MaxIterations
	if iterations > maxIter {
		maxIter = iterations
	}

	for iter := 0; iter < maxIter; iter++ {
		forwardDelta := e.forwardPass()
		constraintDelta := e.applyConstraints()
		delta := forwardDelta
		if constraintDelta > delta {
			delta = constraintDelta
		}
		e.log.Trace("iteration", "n", iter, "delta", delta)
		if delta < e.config.ConvergenceThreshold {
			e.log.Debug("converged", "iteration", iter, "delta", delta)
			break
		}
	}

	return e.valuesSnapshot()
}

// Query runs inference with the given evidence and returns the named
// variable's value, or 0.5 if the variable is not declared.
func (e *Engine) Query(name string, evidence Evidence) float64 {
	result := e.Run(evidence, 0)
	if v, ok := result[name]; ok {
		return v
	}
	return 0.5
}

func (e *Engine) valuesSnapshot() map[string]float64 {
	out := make(map[string]float64, len(e.order))
	for i, name := range e.order {
		out[name] = e.states[i].value
	}
	return out
}

// forwardPass evaluates every output-rule of every unlocked variable, in
// schema insertion order, combining contributions by weight-weighted mean
// and mixing the result into the variable's current (pre-pass) value by
// the damping factor. It
// returns the maximum absolute post-damping delta observed.
func (e *Engine) forwardPass() float64 {
	maxDelta := 0.0

	for i, name := range e.order {
		ruleIdxs := e.outputRuleIdx[name]
		if len(ruleIdxs) == 0 || e.states[i].locked {
			continue
		}

		var contributions, weights []float64
		for _, ri := range ruleIdxs {
			v, ok := e.evaluateRule(ri)
			if !ok {
				continue
			}
			contributions = append(contributions, v)
			weights = append(weights, e.ruleWeights[ri])
		}
		if len(contributions) == 0 {
			continue
		}

		totalWeight := 0.0
		weightedSum := 0.0
		for j, c := range contributions {
			totalWeight += weights[j]
			weightedSum += c * weights[j]
		}
		if totalWeight == 0 {
			continue // every contributing rule had zero weight
		}
		newContribution := weightedSum / totalWeight

		old := e.states[i].value
		damped := e.config.DampingFactor*newContribution + (1-e.config.DampingFactor)*old
		damped = logic.Clamp(damped)
		e.states[i].value = damped

		if d := abs(damped - old); d > maxDelta {
			maxDelta = d
		}
	}

	return maxDelta
}

// evaluateRule computes one rule's contribution given the engine's
// current state, returning ok=false when an input name is undeclared (an
// undeclared input means the rule is silently skipped for this pass) or
// the rule's type is unknown.
func (e *Engine) evaluateRule(ruleIdx int) (float64, bool) {
	r := &e.rules[ruleIdx]
	weight := e.ruleWeights[ruleIdx]

	inputs := make([]float64, 0, len(r.Inputs))
	for _, name := range r.Inputs {
		idx, ok := e.nameToIndex[name]
		if !ok {
			return 0, false
		}
		inputs = append(inputs, e.states[idx].value)
	}

	switch r.Type {
	case schema.Implication:
		op := logic.Operator(r.Op)
		if op == "" {
			op = logic.OpIdentity
		}
		antecedent, err := logic.Dispatch(op, inputs, nil)
		if err != nil {
			return 0, false
		}
		return logic.Clamp(antecedent * weight), true
	case schema.Conjunction:
		return logic.Clamp(logic.And(inputs...) * weight), true
	case schema.Disjunction:
		return logic.Clamp(logic.Or(inputs...) * weight), true
	case schema.Equivalence:
		switch len(inputs) {
		case 0:
			return 0, false
		case 1:
			return logic.Clamp(inputs[0] * weight), true
		default:
			return logic.Clamp(logic.Equivalent(inputs[0], inputs[1]) * weight), true
		}
	default:
		return 0, false
	}
}

// applyConstraints iterates constraints in insertion order: ATTACK and
// SUPPORT push their (possibly multiple, for the list form) targets down
// or up proportional to the source's value; MUTEX renormalizes its
// unlocked listed targets so their sum never exceeds 1 (locked targets are
// left out and unchanged). It returns the maximum absolute
// delta observed.
func (e *Engine) applyConstraints() float64 {
	maxDelta := 0.0

	for _, c := range e.constraints {
		srcIdx, ok := e.nameToIndex[c.Source]
		if !ok {
			continue
		}
		source := e.states[srcIdx].value
		targets := c.TargetList()

		switch c.Kind {
		case schema.Attack:
			for _, t := range targets {
				if d, ok := e.applyToTarget(t, func(old float64) float64 {
					return logic.Inhibit(old, source, c.Weight)
				}); ok && d > maxDelta {
					maxDelta = d
				}
			}
		case schema.Support:
			for _, t := range targets {
				if d, ok := e.applyToTarget(t, func(old float64) float64 {
					return logic.Support(old, source, c.Weight)
				}); ok && d > maxDelta {
					maxDelta = d
				}
			}
		case schema.Mutex:
			if d := e.applyMutex(targets); d > maxDelta {
				maxDelta = d
			}
		}
	}

	return maxDelta
}

func (e *Engine) applyToTarget(name string, f func(old float64) float64) (float64, bool) {
	idx, ok := e.nameToIndex[name]
	if !ok || e.states[idx].locked {
		return 0, false
	}
	old := e.states[idx].value
	newVal := logic.Clamp(f(old))
	e.states[idx].value = newVal
	return abs(newVal - old), true
}

func (e *Engine) applyMutex(targets []string) float64 {
	idxs := make([]int, 0, len(targets))
	vals := make([]float64, 0, len(targets))
	for _, t := range targets {
		idx, ok := e.nameToIndex[t]
		if !ok || e.states[idx].locked {
			continue
		}
		idxs = append(idxs, idx)
		vals = append(vals, e.states[idx].value)
	}
	if len(idxs) == 0 {
		return 0
	}
	normalized := logic.MutexNormalize(vals)

	maxDelta := 0.0
	for i, idx := range idxs {
		old := e.states[idx].value
		e.states[idx].value = normalized[i]
		if d := abs(normalized[i] - old); d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// GetValue returns the current value of name and whether it is declared.
func (e *Engine) GetValue(name string) (float64, bool) {
	idx, ok := e.nameToIndex[name]
	if !ok {
		return 0, false
	}
	return e.states[idx].value, true
}

// SetValue sets name's value unless it is locked or undeclared, returning
// whether the write took effect.
func (e *Engine) SetValue(name string, value float64) bool {
	idx, ok := e.nameToIndex[name]
	if !ok || e.states[idx].locked {
		return false
	}
	e.states[idx].value = logic.Clamp(value)
	return true
}

// LockVariable unconditionally sets name's value and locks it, returning
// whether the variable was declared.
func (e *Engine) LockVariable(name string, value float64) bool {
	idx, ok := e.nameToIndex[name]
	if !ok {
		return false
	}
	e.states[idx].value = logic.Clamp(value)
	e.states[idx].locked = true
	return true
}

// GetRuleWeight returns a rule's current (possibly trained) weight.
func (e *Engine) GetRuleWeight(ruleID string) (float64, bool) {
	idx, ok := e.ruleIDIndex[ruleID]
	if !ok {
		return 0, false
	}
	return e.ruleWeights[idx], true
}

// SetRuleWeight overwrites a rule's weight, clamped to [0,1].
func (e *Engine) SetRuleWeight(ruleID string, weight float64) bool {
	idx, ok := e.ruleIDIndex[ruleID]
	if !ok {
		return false
	}
	e.ruleWeights[idx] = logic.Clamp(weight)
	return true
}

// RulesUsing reports the rule ids that name variable as an input and as
// an output.
func (e *Engine) RulesUsing(variable string) (asInput, asOutput []string) {
	for _, idx := range e.inputRuleIdx[variable] {
		asInput = append(asInput, e.rules[idx].ID)
	}
	for _, idx := range e.outputRuleIdx[variable] {
		asOutput = append(asOutput, e.rules[idx].ID)
	}
	return asInput, asOutput
}

// Export returns a schema reflecting the current (possibly trained) rule
// weights, round-trippable through schema.LoadYAML/ToYAML.
func (e *Engine) Export() *schema.Schema {
	out := &schema.Schema{
		Version:     e.schema.Version,
		Name:        e.schema.Name,
		Description: e.schema.Description,
		Variables:   e.schema.Variables,
		Order:       append([]string(nil), e.order...),
		Constraints: append([]schema.Constraint(nil), e.constraints...),
		Metadata:    e.schema.Metadata,
		Config:      e.config,
	}
	out.Rules = make([]schema.Rule, len(e.rules))
	for i, r := range e.rules {
		r.Weight = e.ruleWeights[i]
		out.Rules[i] = r
	}
	return out
}

// ExportState returns the current value of every declared variable.
func (e *Engine) ExportState() map[string]float64 {
	return e.valuesSnapshot()
}

// Variables returns the declared variable names in schema insertion order.
func (e *Engine) Variables() []string {
	return append([]string(nil), e.order...)
}

// RuleIDs returns the declared rule ids in schema insertion order.
func (e *Engine) RuleIDs() []string {
	ids := make([]string, len(e.rules))
	for i, r := range e.rules {
		ids[i] = r.ID
	}
	return ids
}
