package ui

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed personas.yaml
var personasYAML []byte

// Persona is one selectable role-based identity
type Persona struct {
	Key       string `yaml:"key"`
	Role      string `yaml:"role"`
	FirstName string `yaml:"first_name"`
	Heading   string `yaml:"heading"`
	Warning   string `yaml:"warning"`
	Home      string `yaml:"home"`
	Title     string `yaml:"title"`
}

// Personas is the ordered persona list shown on the home page
type Personas []Persona

// LoadPersonas parses the embedded persona definitions
func LoadPersonas() (Personas, error) {
	return parsePersonas(personasYAML)
}

func parsePersonas(data []byte) (Personas, error) {
	var doc struct {
		Personas Personas `yaml:"personas"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse personas: %w", err)
	}

	seen := make(map[string]bool, len(doc.Personas))
	for _, p := range doc.Personas {
		if p.Key == "" || p.Role == "" || p.Home == "" {
			return nil, fmt.Errorf("persona %q: key, role and home are required", p.Key)
		}
		if seen[p.Key] {
			return nil, fmt.Errorf("duplicate persona %q", p.Key)
		}
		seen[p.Key] = true
	}
	return doc.Personas, nil
}

// ByKey returns the persona with the given key
func (ps Personas) ByKey(key string) (Persona, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p, true
		}
	}
	return Persona{}, false
}

// ByRole returns the persona holding the given role
func (ps Personas) ByRole(role string) (Persona, bool) {
	for _, p := range ps {
		if p.Role == role {
			return p, true
		}
	}
	return Persona{}, false
}
