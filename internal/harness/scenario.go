package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pick/internal/ui"
)

// Scenario defines one deterministic engine run.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden
	// file when the scenario is golden-checked.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Config is the YAML config document the run starts from.
	Config string `yaml:"config"`

	// Category names the category to pick from.
	Category string `yaml:"category"`

	// Responses are the scripted prompt answers, consumed in order.
	// Allowed values: accept, decline, abort.
	Responses []string `yaml:"responses"`

	// Uniforms and Normals feed the scripted random source. Either may
	// be empty; an empty list answers every draw with zero.
	Uniforms []float64 `yaml:"uniforms,omitempty"`
	Normals  []float64 `yaml:"normals,omitempty"`

	// Token is the fixed pick token. Defaults to "test-pick-token" so
	// golden output stays stable when the scenario does not care.
	Token string `yaml:"token,omitempty"`
}

// DefaultToken is used when a scenario does not fix its own token.
const DefaultToken = "test-pick-token"

// LoadScenario reads a scenario definition from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if s.Config == "" {
		return fmt.Errorf("scenario %q has no config", s.Name)
	}
	if s.Category == "" {
		return fmt.Errorf("scenario %q has no category", s.Name)
	}
	if _, err := s.responses(); err != nil {
		return err
	}
	return nil
}

// responses parses the scripted response names.
func (s *Scenario) responses() ([]ui.Response, error) {
	out := make([]ui.Response, 0, len(s.Responses))
	for i, name := range s.Responses {
		switch name {
		case "accept":
			out = append(out, ui.Accept)
		case "decline":
			out = append(out, ui.Decline)
		case "abort":
			out = append(out, ui.Abort)
		default:
			return nil, fmt.Errorf("response %d: unknown response %q (want accept, decline or abort)", i, name)
		}
	}
	return out, nil
}
