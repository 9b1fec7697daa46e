// Package compose implements CLI subcommands turning selector recipes into
// selector strings and selector strings back into part listings.
package compose

import (
	"bytes"
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
)

// Recipe is the top-level build input: a list of selector specifications.
type Recipe struct {
	Selectors []Spec `yaml:"selectors"`
}

// Spec describes one selector: either a flat list of parts or a combine
// node joining two nested specifications. Exactly one of the two forms must
// be used.
type Spec struct {
	Parts   []Step       `yaml:"parts,omitempty"`
	Combine *CombineSpec `yaml:"combine,omitempty"`
}

// CombineSpec joins two selector specifications with a combinator. The
// combinator is given by name (descendant, child, sibling, adjacent) or by
// its literal token; unrecognized values are taken into the joint verbatim,
// the builder never validates them.
type CombineSpec struct {
	Combinator string `yaml:"combinator"`
	Left       *Spec  `yaml:"left"`
	Right      *Spec  `yaml:"right"`
}

// Step is a single part of a selector. In YAML it is a one-key mapping, key
// being the part name:
//
//	- element: div
//	- id: main
//	- class: container
type Step struct {
	Part  selector.Part
	Value string
}

// UnmarshalYAML decodes the one-key mapping form.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: selector step must be a single \"part: value\" pair", node.Line)
	}

	part, err := selector.ParsePart(node.Content[0].Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Content[0].Line, err)
	}

	s.Part = part
	s.Value = node.Content[1].Value
	return nil
}

// MarshalYAML encodes the step back into its one-key mapping form.
func (s Step) MarshalYAML() (any, error) {
	return map[string]string{s.Part.String(): s.Value}, nil
}

// DecodeRecipe parses recipe YAML. Unknown fields fail the decode.
func DecodeRecipe(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if len(r.Selectors) == 0 {
		return nil, errors.New("recipe has no selectors")
	}
	return &r, nil
}

// Build assembles the selector described by the specification.
func (s *Spec) Build() (selector.Builder, error) {
	if s == nil {
		return selector.Builder{}, errors.New("missing selector specification")
	}
	if s.Combine != nil && len(s.Parts) > 0 {
		return selector.Builder{}, errors.New("selector specification cannot have both parts and combine")
	}

	if s.Combine != nil {
		left, err := s.Combine.Left.Build()
		if err != nil {
			return selector.Builder{}, fmt.Errorf("combine left side: %w", err)
		}
		right, err := s.Combine.Right.Build()
		if err != nil {
			return selector.Builder{}, fmt.Errorf("combine right side: %w", err)
		}
		comb, err := selector.ParseCombinator(s.Combine.Combinator)
		if err != nil {
			// not an error - combinators are passed through verbatim
			comb = selector.Combinator(s.Combine.Combinator)
		}
		b := selector.Combine(left, comb, right)
		return b, b.Err()
	}

	if len(s.Parts) == 0 {
		return selector.Builder{}, errors.New("selector specification is empty")
	}
	b := selector.New()
	for _, st := range s.Parts {
		b = b.Add(st.Part, st.Value)
	}
	return b, b.Err()
}
