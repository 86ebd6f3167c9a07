package types

// Default values applied by the loader when deployment fields are omitted.
const (
	DefaultServiceName = "agent-workflow"
	DefaultRegion      = "us-central1"
)

// DeploymentConfig describes the optional Cloud Run deployment target.
// CredentialRef names a secret managed elsewhere; it is only ever referenced
// in generated documentation, never embedded in output.
type DeploymentConfig struct {
	ProjectID     string `yaml:"project_id,omitempty"`
	ServiceName   string `yaml:"service_name,omitempty"`
	Region        string `yaml:"region,omitempty"`
	Memory        bool   `yaml:"memory,omitempty"` // enable the managed memory feature
	CredentialRef string `yaml:"credential_ref,omitempty"`
}

// Empty reports whether no deployment field is set at all.
func (d DeploymentConfig) Empty() bool {
	return d == DeploymentConfig{}
}
