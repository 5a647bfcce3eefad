package schema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// FromMap decodes a loosely-typed document — e.g. the result of decoding
// JSON into map[string]interface{} — into a Schema. This is the entry
// point for callers holding a schema-shaped document that did not come
// from ToYAML/LoadYAML. The documented defaults apply to absent keys:
// prior 0.5, rule weight 1.0, learnable true, constraint weight 1.0, and
// DefaultConfig for missing config fields.
//
// Variable declaration order cannot be recovered from a bare Go map, so
// Order is filled in alphabetically by variable name; callers that need a
// specific forward-pass order should build a Schema with AddVariable
// instead.
func FromMap(doc map[string]interface{}) (*Schema, error) {
	var raw struct {
		Version     string                            `mapstructure:"version"`
		Name        string                            `mapstructure:"name"`
		Description string                            `mapstructure:"description"`
		Variables   map[string]map[string]interface{} `mapstructure:"variables"`
		Rules       []map[string]interface{}          `mapstructure:"rules"`
		Constraints []map[string]interface{}          `mapstructure:"constraints"`
		Metadata    map[string]interface{}            `mapstructure:"metadata"`
		Config      map[string]interface{}            `mapstructure:"config"`
	}
	if err := decodeLoose(doc, &raw); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}

	s := &Schema{
		Version:     raw.Version,
		Name:        raw.Name,
		Description: raw.Description,
		Variables:   make(map[string]Variable, len(raw.Variables)),
		Metadata:    raw.Metadata,
	}

	for name, vdoc := range raw.Variables {
		v := Variable{Prior: 0.5}
		if err := decodeLoose(vdoc, &v); err != nil {
			return nil, fmt.Errorf("schema: decode variable %q: %w", name, err)
		}
		s.Variables[name] = v
	}

	for i, rdoc := range raw.Rules {
		r := Rule{Weight: 1.0, Learnable: true}
		if err := decodeLoose(rdoc, &r); err != nil {
			return nil, fmt.Errorf("schema: decode rules[%d]: %w", i, err)
		}
		s.Rules = append(s.Rules, r)
	}

	for i, cdoc := range raw.Constraints {
		c := Constraint{Weight: 1.0}
		if err := decodeLoose(cdoc, &c); err != nil {
			return nil, fmt.Errorf("schema: decode constraints[%d]: %w", i, err)
		}
		s.Constraints = append(s.Constraints, c)
	}

	cfg := DefaultConfig()
	if raw.Config != nil {
		if err := decodeLoose(raw.Config, &cfg); err != nil {
			return nil, fmt.Errorf("schema: decode config: %w", err)
		}
	}
	s.Config = cfg

	s.Order = sortedVariableNames(s.Variables)
	return s, nil
}

// decodeLoose runs one weakly-typed mapstructure decode into a
// default-seeded result, leaving fields absent from the input untouched.
func decodeLoose(in, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
