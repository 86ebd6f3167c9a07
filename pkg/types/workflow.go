package types

// WorkflowType selects how agents relate to each other structurally.
type WorkflowType string

const (
	// WorkflowSequential runs agents as a linear chain in list order.
	WorkflowSequential WorkflowType = "sequential"
	// WorkflowHierarchical arranges agents as a tree via parent references.
	WorkflowHierarchical WorkflowType = "hierarchical"
	// WorkflowCollaborative treats all agents as an unordered peer set.
	WorkflowCollaborative WorkflowType = "collaborative"
)

// Valid reports whether t is one of the three known workflow types.
func (t WorkflowType) Valid() bool {
	switch t {
	case WorkflowSequential, WorkflowHierarchical, WorkflowCollaborative:
		return true
	}
	return false
}
