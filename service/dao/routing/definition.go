package routing

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is a serialisable routing profile: the static operation→provider
// routes plus the named workflow step sequences built on top of them. Both
// tables are treated as read-only during normal operation.
type Definition struct {
	Name      string              `yaml:"name,omitempty" json:"name,omitempty"`
	Routes    map[string]string   `yaml:"routes" json:"routes"`
	Workflows map[string][]string `yaml:"workflows,omitempty" json:"workflows,omitempty"`
}

// Validate returns all configuration issues found in the definition.
func (d *Definition) Validate() []error {
	var issues []error
	if len(d.Routes) == 0 {
		issues = append(issues, fmt.Errorf("definition %v has no routes", d.Name))
	}
	for name, steps := range d.Workflows {
		if len(steps) == 0 {
			issues = append(issues, fmt.Errorf("workflow %v has no steps", name))
		}
		for _, step := range steps {
			if _, ok := d.Routes[step]; !ok {
				issues = append(issues, fmt.Errorf("workflow %v step %v has no route", name, step))
			}
		}
	}
	return issues
}

// DecodeYAML decodes a definition from YAML, applying ${env.KEY} expansion
// before parsing.
func DecodeYAML(encoded []byte) (*Definition, error) {
	expanded := expandEnv(string(encoded))
	definition := &Definition{}
	if err := yaml.Unmarshal([]byte(expanded), definition); err != nil {
		return nil, fmt.Errorf("failed to decode routing definition: %w", err)
	}
	if issues := definition.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return definition, nil
}
