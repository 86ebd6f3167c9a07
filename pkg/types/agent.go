package types

import "gopkg.in/yaml.v3"

// DefaultTemperature is applied when an agent omits the temperature field.
const DefaultTemperature = 1.0

// Agent is a single configured unit of behavior in the workflow: a prompt, a
// model selection and an ordered tool list. Agents are built by the visual
// editor and passed to the compiler as an immutable snapshot; the compiler
// never mutates them.
type Agent struct {
	ID               string  `yaml:"id,omitempty"`
	Name             string  `yaml:"name"`
	SystemPrompt     string  `yaml:"system_prompt,omitempty"`
	WelcomeMessage   string  `yaml:"welcome_message,omitempty"`
	InputPlaceholder string  `yaml:"input_placeholder,omitempty"`
	Tools            []Tool  `yaml:"tools,omitempty"`
	ParentID         string  `yaml:"parent_id,omitempty"` // Hierarchical mode only
	Model            string  `yaml:"model"`
	Temperature      float64 `yaml:"temperature"`
}

// UnmarshalYAML fills in defaults for fields the editor export may omit.
func (a *Agent) UnmarshalYAML(value *yaml.Node) error {
	type raw Agent
	tmp := raw{Temperature: DefaultTemperature}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*a = Agent(tmp)
	return nil
}

// HasParent reports whether the agent references another agent as its parent.
func (a *Agent) HasParent() bool {
	return a.ParentID != ""
}
