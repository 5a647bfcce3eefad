package engine

// variableState is the runtime, mutable counterpart of a schema.Variable:
// value and locked are reset from the declaration on every Run; lower and
// upper are reserved for future interval inference and are not read or
// written anywhere today.
type variableState struct {
	value  float64
	locked bool
	lower  float64
	upper  float64
}
