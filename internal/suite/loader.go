package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	for i, c := range s.Cases {
		if c.Expression == "" {
			return nil, fmt.Errorf("case at index %d has no expression", i)
		}
		if c.Want == nil && c.WantErr == "" {
			return nil, fmt.Errorf("case %q expects neither a value nor an error", caseName(c, i))
		}
		if c.Want != nil && c.WantErr != "" {
			return nil, fmt.Errorf("case %q expects both a value and an error", caseName(c, i))
		}
	}

	return &s, nil
}

func caseName(c Case, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%d", i)
}
