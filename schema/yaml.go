package schema

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// wireSchema mirrors Schema's exported fields except Variables, which is
// handled by hand below so that variable declaration order survives a
// round trip (plain Go maps, and yaml.v3's default map decoding, do not
// preserve key order; a yaml.Node mapping does).
type wireSchema struct {
	Version     string                 `yaml:"version"`
	Name        string                 `yaml:"name,omitempty"`
	Description string                 `yaml:"description,omitempty"`
	Rules       []Rule                 `yaml:"rules"`
	Constraints []Constraint           `yaml:"constraints"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
	Config      Config                 `yaml:"config,omitempty"`
}

// MarshalYAML emits the schema document with variables as a YAML mapping
// whose key order matches Schema.Order, so ToYAML followed by LoadYAML
// reproduces the same forward-pass iteration order.
func (s *Schema) MarshalYAML() (interface{}, error) {
	w := wireSchema{
		Version:     s.Version,
		Name:        s.Name,
		Description: s.Description,
		Rules:       s.Rules,
		Constraints: s.Constraints,
		Metadata:    s.Metadata,
		Config:      s.Config,
	}
	base, err := yaml.Marshal(&w)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal base fields: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(base, &root); err != nil {
		return nil, fmt.Errorf("schema: re-decode base fields: %w", err)
	}
	doc := root.Content[0]

	varsNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range s.Order {
		v := s.Variables[name]
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		valNode := &yaml.Node{}
		if err := valNode.Encode(v); err != nil {
			return nil, fmt.Errorf("schema: encode variable %q: %w", name, err)
		}
		varsNode.Content = append(varsNode.Content, keyNode, valNode)
	}
	doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "variables"}, varsNode)

	return doc, nil
}

// UnmarshalYAML decodes a schema document, recovering the variable
// declaration order from the mapping's key order.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	var w wireSchema
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("schema: decode base fields: %w", err)
	}
	s.Version = w.Version
	s.Name = w.Name
	s.Description = w.Description
	s.Rules = w.Rules
	s.Constraints = w.Constraints
	s.Metadata = w.Metadata
	s.Config = w.Config
	s.Variables = make(map[string]Variable)
	s.Order = nil

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "variables" {
			continue
		}
		varsNode := node.Content[i+1]
		for j := 0; j+1 < len(varsNode.Content); j += 2 {
			name := varsNode.Content[j].Value
			var v Variable
			if err := varsNode.Content[j+1].Decode(&v); err != nil {
				return fmt.Errorf("schema: decode variable %q: %w", name, err)
			}
			s.Variables[name] = v
			s.Order = append(s.Order, name)
		}
	}
	return nil
}

// UnmarshalYAML seeds the documented default prior of 0.5 before decoding,
// so a variable declared as a bare `{type: bool}` starts neutral rather
// than at 0.
func (v *Variable) UnmarshalYAML(node *yaml.Node) error {
	type plain Variable
	p := plain{Prior: 0.5}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Variable(p)
	return nil
}

// UnmarshalYAML seeds the documented defaults — weight 1.0, learnable
// true — for keys the document omits; explicit values always win.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	type plain Rule
	p := plain{Weight: 1.0, Learnable: true}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = Rule(p)
	return nil
}

// UnmarshalYAML seeds the default weight of 1.0 — an ATTACK or SUPPORT
// with no weight key is a full-strength constraint, not a no-op.
func (c *Constraint) UnmarshalYAML(node *yaml.Node) error {
	type plain Constraint
	p := plain{Weight: 1.0}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Constraint(p)
	return nil
}

// UnmarshalYAML seeds DefaultConfig so a partial config block (say, only
// damping_factor) keeps the documented defaults for the rest; a fully
// absent config block is handled by LoadYAML instead.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type plain Config
	p := plain(DefaultConfig())
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Config(p)
	return nil
}

// ToYAML serializes the schema to its stable, round-trippable document
// form: loading an exported schema back reproduces identical behavior.
func (s *Schema) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal: %w", err)
	}
	return out, nil
}

// LoadYAML parses a schema document produced by ToYAML (or hand-written
// in the same shape).
func LoadYAML(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("schema: unmarshal: %w", err)
	}
	if s.Variables == nil {
		s.Variables = make(map[string]Variable)
	}
	if s.Config == (Config{}) {
		s.Config = DefaultConfig()
	}
	return s, nil
}

// sortedVariableNames is used by FromMap, where the input is a bare Go map
// with no recoverable declaration order; alphabetical order is chosen so
// that repeated calls on the same document are at least deterministic.
func sortedVariableNames(vars map[string]Variable) []string {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
