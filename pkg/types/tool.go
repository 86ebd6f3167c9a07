package types

// ParamType is the closed set of abstract parameter types the editor offers.
// The type mapper translates these to concrete Python types.
type ParamType string

const (
	ParamText    ParamType = "text"
	ParamNumeric ParamType = "numeric"
	ParamBoolean ParamType = "boolean"
)

// Tool is a callable capability an agent may invoke. A tool is owned by
// exactly one agent in the configuration, but tools whose names sanitize to
// the same identifier are deduplicated globally during emission.
type Tool struct {
	ID          string      `yaml:"id,omitempty"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Parameters  []Parameter `yaml:"parameters,omitempty"`
}

// Parameter is one typed input of a tool.
type Parameter struct {
	ID          string    `yaml:"id,omitempty"`
	Name        string    `yaml:"name"`
	Type        ParamType `yaml:"type"`
	Description string    `yaml:"description,omitempty"`
	Required    bool      `yaml:"required"`
}
