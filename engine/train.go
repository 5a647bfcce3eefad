package engine

import (
	"github.com/lukasiewicz/neurosym/logic"
	"github.com/lukasiewicz/neurosym/schema"
)

// TrainingExample pairs an evidence assignment with the target values the
// engine should be pushed towards.
type TrainingExample struct {
	Inputs  Evidence
	Targets map[string]float64
}

// Train runs up to epochs passes of error-driven weight adjustment over
// examples. Each example is evaluated with Inputs as evidence; for every
// (target_var, target_value) pair the error (target minus actual) is
// squared into the epoch loss, and every learnable output-rule of
// target_var has its weight nudged by error * learning_rate * the mean
// value of the rule's own inputs (read from the example's Inputs, falling
// back to current engine state, falling back to 0.5). Training stops
// early once an epoch's mean loss drops below 1e-3, and the final epoch's
// mean loss is returned. Loss on an empty example set is 0.
func (e *Engine) Train(examples []TrainingExample, epochs int) float64 {
	if len(examples) == 0 {
		return 0
	}

	var loss float64
	for epoch := 0; epoch < epochs; epoch++ {
		loss = 0
		for _, ex := range examples {
			e.Run(ex.Inputs, 0)

			for targetVar, targetValue := range ex.Targets {
				actual, ok := e.GetValue(targetVar)
				if !ok {
					continue
				}
				err := targetValue - actual
				loss += err * err

				for _, ri := range e.outputRuleIdx[targetVar] {
					r := &e.rules[ri]
					if !r.Learnable {
						continue
					}
					strength := e.inputStrength(r, ex.Inputs)
					updated := e.ruleWeights[ri] + err*e.config.LearningRate*strength
					e.ruleWeights[ri] = logic.Clamp(updated)
				}
			}
		}
		loss /= float64(len(examples))
		e.log.Debug("epoch complete", "epoch", epoch, "loss", loss)
		if loss < 1e-3 {
			break
		}
	}

	return loss
}

// inputStrength is the mean, over a rule's declared inputs, of that
// input's value in the example's evidence — falling back to the engine's
// current state when the example does not mention it, and to 0.5 when
// the variable itself is undeclared.
func (e *Engine) inputStrength(r *schema.Rule, evidence Evidence) float64 {
	if len(r.Inputs) == 0 {
		return 0.5
	}
	var sum float64
	for _, name := range r.Inputs {
		if v, ok := evidence[name]; ok {
			sum += v
			continue
		}
		if v, ok := e.GetValue(name); ok {
			sum += v
			continue
		}
		sum += 0.5
	}
	return sum / float64(len(r.Inputs))
}
