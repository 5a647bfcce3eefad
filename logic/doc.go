// Package logic implements the Łukasiewicz fuzzy-logic kernel: negation,
// T-norm conjunction, T-conorm disjunction, implication, equivalence,
// weighted mean, and the attack/support/mutex argumentation primitives.
//
// Every function takes and returns a truth value in [0,1] and clamps its
// result before returning. None of them hold state; MutexNormalize returns
// a freshly allocated slice. Everything else in this module composes these.
package logic
