package field

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a field spec from a YAML file.
func Load(path string) (*FieldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading field spec: %w", err)
	}

	var spec FieldSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing field spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a field spec from a project directory.
// It looks for field.yaml in the given directory.
func LoadProject(projectDir string) (*FieldSpec, error) {
	specPath := filepath.Join(projectDir, "field.yaml")
	return Load(specPath)
}
