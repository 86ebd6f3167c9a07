// Package topology turns the flat agent list plus parent references into the
// structure each workflow mode needs. Agents are kept in the input slice and
// addressed by index; the resolver computes child lists and roots separately
// instead of threading pointers through the entities themselves.
package topology

import (
	"github.com/cockroachdb/errors"

	"Flowsmith/pkg/types"
)

// ErrCycle is returned when the parent references contain a cycle. The
// editor is expected to prevent cycles, but the resolver must fail loudly
// rather than loop if one slips through.
var ErrCycle = errors.New("cyclic parent reference")

// ErrUnknownParent is returned when an agent references a parent id that does
// not exist in the configuration.
var ErrUnknownParent = errors.New("unknown parent reference")

// Topology is the resolved structure for one workflow configuration.
// Children and Roots hold indices into Agents, which is the untouched input
// slice in its original order.
type Topology struct {
	Mode     types.WorkflowType
	Agents   []types.Agent
	Roots    []int
	Children map[int][]int
}

// Resolve interprets the agent list under the given workflow mode.
//
// Sequential keeps input order as a linear chain and ignores parent
// references entirely. Collaborative treats every agent as a root peer.
// Hierarchical builds a forest from parent_id edges and returns ErrCycle or
// ErrUnknownParent when the references do not form one.
func Resolve(agents []types.Agent, mode types.WorkflowType) (*Topology, error) {
	topo := &Topology{
		Mode:     mode,
		Agents:   agents,
		Children: make(map[int][]int),
	}

	if mode != types.WorkflowHierarchical {
		for i := range agents {
			topo.Roots = append(topo.Roots, i)
		}
		return topo, nil
	}

	index := make(map[string]int, len(agents))
	for i := range agents {
		index[agents[i].ID] = i
	}

	parent := make([]int, len(agents))
	for i := range agents {
		parent[i] = -1
		if !agents[i].HasParent() {
			continue
		}
		p, ok := index[agents[i].ParentID]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownParent, "agent %q references parent %q",
				agents[i].Name, agents[i].ParentID)
		}
		parent[i] = p
	}

	// Walk each agent's ancestor chain with a visited set. The chain can be
	// at most len(agents) long, so anything longer is a cycle even without
	// the set; the set names the offending agent for the error.
	for i := range agents {
		visited := map[int]bool{i: true}
		for p := parent[i]; p != -1; p = parent[p] {
			if visited[p] {
				return nil, errors.Wrapf(ErrCycle, "involving agent %q", agents[p].Name)
			}
			visited[p] = true
		}
	}

	for i := range agents {
		if parent[i] == -1 {
			topo.Roots = append(topo.Roots, i)
		} else {
			topo.Children[parent[i]] = append(topo.Children[parent[i]], i)
		}
	}
	return topo, nil
}

// EmitOrder returns agent indices in the order the emitter should declare
// them: children before parents in hierarchical mode (a variable must exist
// before a parent's sub_agents list references it), input order otherwise.
func (t *Topology) EmitOrder() []int {
	if t.Mode != types.WorkflowHierarchical {
		order := make([]int, len(t.Agents))
		for i := range order {
			order[i] = i
		}
		return order
	}

	order := make([]int, 0, len(t.Agents))
	var walk func(int)
	walk = func(i int) {
		for _, c := range t.Children[i] {
			walk(c)
		}
		order = append(order, i)
	}
	for _, r := range t.Roots {
		walk(r)
	}
	return order
}
