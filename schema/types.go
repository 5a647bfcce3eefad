package schema

// RuleType names the closed set of rule kinds the engine evaluates.
type RuleType string

// The full, closed set of rule types.
const (
	Implication RuleType = "IMPLICATION"
	Conjunction RuleType = "CONJUNCTION"
	Disjunction RuleType = "DISJUNCTION"
	Equivalence RuleType = "EQUIVALENCE"
)

// ConstraintKind names the closed set of argumentation constraint kinds.
type ConstraintKind string

// The full, closed set of constraint kinds.
const (
	Attack  ConstraintKind = "ATTACK"
	Support ConstraintKind = "SUPPORT"
	Mutex   ConstraintKind = "MUTEX"
)

// VariableKind is advisory metadata; both kinds behave identically in the
// engine's numeric propagation.
type VariableKind string

// The two advisory variable kinds.
const (
	KindBool       VariableKind = "bool"
	KindContinuous VariableKind = "continuous"
)

// Variable is the declarative description of one node in the logic graph.
type Variable struct {
	Type        VariableKind `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Prior       float64      `json:"prior" yaml:"prior" mapstructure:"prior"`
	Locked      bool         `json:"locked,omitempty" yaml:"locked,omitempty" mapstructure:"locked"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// Rule connects one or more input Variables to an output Variable through
// an Operator, scaled by Weight. When Learnable is true, the engine's
// Train loop adjusts the engine's own copy of the weight (see
// engine.Engine.Train); the Rule in the Schema is not modified, but a
// *Schema returned by engine.Engine.Export carries back the trained weights.
type Rule struct {
	ID          string   `json:"id" yaml:"id" mapstructure:"id"`
	Type        RuleType `json:"type" yaml:"type" mapstructure:"type"`
	Inputs      []string `json:"inputs" yaml:"inputs" mapstructure:"inputs"`
	Output      string   `json:"output" yaml:"output" mapstructure:"output"`
	Op          string   `json:"op,omitempty" yaml:"op,omitempty" mapstructure:"op"`
	Weight      float64  `json:"weight" yaml:"weight" mapstructure:"weight"`
	Learnable   bool     `json:"learnable" yaml:"learnable" mapstructure:"learnable"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// Constraint is an argumentation-style relation between variables: ATTACK
// and SUPPORT take a single Target; MUTEX takes a list via Targets.
type Constraint struct {
	ID          string         `json:"id" yaml:"id" mapstructure:"id"`
	Kind        ConstraintKind `json:"type" yaml:"type" mapstructure:"type"`
	Source      string         `json:"source" yaml:"source" mapstructure:"source"`
	Target      string         `json:"target,omitempty" yaml:"target,omitempty" mapstructure:"target"`
	Targets     []string       `json:"targets,omitempty" yaml:"targets,omitempty" mapstructure:"targets"`
	Weight      float64        `json:"weight" yaml:"weight" mapstructure:"weight"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// TargetList returns Constraint.Target and Constraint.Targets unified into
// a single slice, so ATTACK/SUPPORT (single Target) and MUTEX (Targets
// list) can be handled uniformly by the engine's constraint pass.
func (c *Constraint) TargetList() []string {
	if len(c.Targets) > 0 {
		return c.Targets
	}
	if c.Target != "" {
		return []string{c.Target}
	}
	return nil
}

// Config holds the engine's tunable parameters; DefaultConfig fills in
// the documented defaults.
type Config struct {
	MaxIterations        int     `json:"max_iterations" yaml:"max_iterations" mapstructure:"max_iterations"`
	ConvergenceThreshold float64 `json:"convergence_threshold" yaml:"convergence_threshold" mapstructure:"convergence_threshold"`
	LearningRate         float64 `json:"learning_rate" yaml:"learning_rate" mapstructure:"learning_rate"`
	DampingFactor        float64 `json:"damping_factor" yaml:"damping_factor" mapstructure:"damping_factor"`
}

// DefaultConfig returns this package's default tuning: 100 max
// iterations, 1e-3 convergence threshold, 0.1 learning rate, 0.5 damping
// factor.
func DefaultConfig() Config {
	return Config{
		MaxIterations:        100,
		ConvergenceThreshold: 1e-3,
		LearningRate:         0.1,
		DampingFactor:        0.5,
	}
}

// Schema is the full, immutable declarative document: named Variables
// (insertion order preserved via Order), ordered Rules and Constraints,
// and free-form Metadata.
type Schema struct {
	Version     string              `json:"version" yaml:"version" mapstructure:"version"`
	Name        string              `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Variables   map[string]Variable `json:"variables" yaml:"variables" mapstructure:"variables"`
	// Order records variable insertion order, since Go maps do not. The
	// forward pass iterates variables in this order — the order is
	// observable via the fixed point it selects (see DESIGN.md).
	Order       []string               `json:"-" yaml:"-" mapstructure:"-"`
	Rules       []Rule                 `json:"rules" yaml:"rules" mapstructure:"rules"`
	Constraints []Constraint           `json:"constraints" yaml:"constraints" mapstructure:"constraints"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty" mapstructure:"metadata"`
	Config      Config                 `json:"config,omitempty" yaml:"config,omitempty" mapstructure:"config"`
}

// New creates an empty Schema with DefaultConfig and version "1.0",
// ready for AddVariable/AddRule/AddConstraint.
func New() *Schema {
	return &Schema{
		Version:   "1.0",
		Variables: make(map[string]Variable),
		Config:    DefaultConfig(),
	}
}

// AddVariable declares a variable, recording it in insertion order. A
// second call with the same name overwrites the declaration but does not
// duplicate its entry in Order.
func (s *Schema) AddVariable(name string, v Variable) {
	if _, exists := s.Variables[name]; !exists {
		s.Order = append(s.Order, name)
	}
	s.Variables[name] = v
}

// AddRule appends a rule, preserving insertion order.
func (s *Schema) AddRule(r Rule) {
	s.Rules = append(s.Rules, r)
}

// AddConstraint appends a constraint, preserving insertion order.
func (s *Schema) AddConstraint(c Constraint) {
	s.Constraints = append(s.Constraints, c)
}
