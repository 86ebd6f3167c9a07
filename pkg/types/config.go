package types

// WorkflowConfig is the full editor-produced configuration: the flat agent
// list, the structural mode, and optional deployment settings. One config is
// consumed per compiler invocation.
type WorkflowConfig struct {
	Agents     []Agent          `yaml:"agents"`
	Workflow   WorkflowType     `yaml:"workflow"`
	Deployment DeploymentConfig `yaml:"deployment,omitempty"`
}

// SetWorkflowType switches the structural mode of the configuration.
//
// This is a lossy, irreversible transform: leaving hierarchical mode clears
// every agent's parent reference, and switching back to hierarchical does NOT
// restore the previous tree. The parent edges only carry meaning in
// hierarchical mode, and keeping stale edges around would let a later switch
// resurrect a tree the user never saw while editing in another mode.
func (c *WorkflowConfig) SetWorkflowType(t WorkflowType) {
	if c.Workflow == WorkflowHierarchical && t != WorkflowHierarchical {
		for i := range c.Agents {
			c.Agents[i].ParentID = ""
		}
	}
	c.Workflow = t
}
