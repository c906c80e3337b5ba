package scenario

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlScenario is the YAML structure for scenario definitions.
type yamlScenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	OnStart     *yamlCommand `yaml:"onStart,omitempty"`
	OnFinish    *yamlCommand `yaml:"onFinish,omitempty"`
}

// yamlCommand uses pointers so that a present-but-empty key ("") can be
// told apart from a missing one.
type yamlCommand struct {
	Type    string  `yaml:"type"`
	Payload *string `yaml:"payload"`
	A       *string `yaml:"a"`
	B       *string `yaml:"b"`
}

// Loader handles loading scenario definitions from various sources.
type Loader struct {
	registry *Registry
}

// NewLoader creates a new scenario loader that populates the given registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// LoadFromFS loads scenario definitions from an embedded or real filesystem.
// It expects YAML files in a "scenarios" subdirectory.
func (l *Loader) LoadFromFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, "scenarios")
	if err != nil {
		return fmt.Errorf("failed to read scenarios directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		if err := l.loadFile(fsys, "scenarios/"+entry.Name()); err != nil {
			return err
		}
	}

	return nil
}

// LoadBytes parses a single scenario document and registers it.
func (l *Loader) LoadBytes(data []byte) (*Scenario, error) {
	var ys yamlScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	sc, err := convertYAMLScenario(&ys)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	l.registry.Register(sc)
	return sc, nil
}

// loadFile loads a single scenario definition file.
func (l *Loader) loadFile(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	if _, err := l.LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func convertYAMLScenario(ys *yamlScenario) (*Scenario, error) {
	onStart, err := convertYAMLCommand(ys.OnStart)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: onStart: %w", ys.Name, err)
	}
	onFinish, err := convertYAMLCommand(ys.OnFinish)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: onFinish: %w", ys.Name, err)
	}

	return &Scenario{
		Name:        ys.Name,
		Description: ys.Description,
		OnStart:     onStart,
		OnFinish:    onFinish,
	}, nil
}

// convertYAMLCommand checks which keys are present for the command type;
// their values may be empty.
func convertYAMLCommand(yc *yamlCommand) (*CommandSpec, error) {
	if yc == nil {
		return nil, nil
	}

	switch CommandType(yc.Type) {
	case CommandSimple:
		if yc.Payload == nil {
			return nil, ErrMissingPayload
		}
		if yc.A != nil || yc.B != nil {
			return nil, fmt.Errorf("%w: a/b on simple command", ErrUnusedFields)
		}
	case CommandComplex:
		if yc.A == nil || yc.B == nil {
			return nil, ErrMissingContext
		}
		if yc.Payload != nil {
			return nil, fmt.Errorf("%w: payload on complex command", ErrUnusedFields)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, yc.Type)
	}

	return &CommandSpec{
		Type:    CommandType(yc.Type),
		Payload: deref(yc.Payload),
		A:       deref(yc.A),
		B:       deref(yc.B),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
