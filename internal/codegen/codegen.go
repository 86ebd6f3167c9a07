// Package codegen is the emission phase of the compiler. It turns a
// validated workflow configuration into a complete Python agent project: a
// map of filename to file text. Generation is pure and deterministic,
// so callers can re-run it freely and compare results byte for byte.
package codegen

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"Flowsmith/internal/pymap"
	"Flowsmith/internal/sanitize"
	"Flowsmith/internal/topology"
	"Flowsmith/pkg/types"
)

// Names of the emitted artifacts. The first six are always produced; the
// build spec and deploy script are added when a deployment project id is set.
const (
	FileAgent        = "agent.py"
	FileTools        = "tools.py"
	FileRequirements = "requirements.txt"
	FileReadme       = "README.md"
	FileDockerfile   = "Dockerfile"
	FileGcloudIgnore = ".gcloudignore"
	FileCloudBuild   = "cloudbuild.yaml"
	FileDeployScript = "deploy.sh"
)

// Generate compiles a workflow configuration into its project files.
//
// The configuration is expected to have passed validation; generation only
// fails for faults the validator cannot express as issues, such as a cyclic
// or dangling agent topology. On failure no partial output is returned.
func Generate(cfg *types.WorkflowConfig) (map[string]string, error) {
	if cfg == nil {
		return nil, errors.New("configuration is nil")
	}

	topo, err := topology.Resolve(cfg.Agents, cfg.Workflow)
	if err != nil {
		return nil, errors.Wrap(err, "resolve agent topology")
	}

	ir := buildIR(cfg, topo)

	files := make(map[string]string, 8)
	for name, tmpl := range map[string]string{
		FileAgent:        agentTemplate,
		FileTools:        toolsTemplate,
		FileReadme:       readmeTemplate,
		FileDockerfile:   dockerfileTemplate,
		FileGcloudIgnore: gcloudIgnoreTemplate,
	} {
		text, err := render(name, tmpl, ir)
		if err != nil {
			return nil, errors.Wrapf(err, "render %s", name)
		}
		files[name] = text
	}
	files[FileRequirements] = renderRequirements(ir.Requirements)

	if ir.Deploy.Enabled {
		for name, tmpl := range map[string]string{
			FileCloudBuild:   cloudBuildTemplate,
			FileDeployScript: deployScriptTemplate,
		} {
			text, err := render(name, tmpl, ir)
			if err != nil {
				return nil, errors.Wrapf(err, "render %s", name)
			}
			files[name] = text
		}
	}
	return files, nil
}

// ---- intermediate representation ----

type projectIR struct {
	Hierarchical  bool
	Collaborative bool

	Agents []agentIR // in emission order (children before parents when hierarchical)

	// Exactly one of SingleRoot / RootClass is used: a hierarchical tree
	// with one root aliases it, everything else wraps RootVars in a
	// workflow-level container agent.
	SingleRoot   string
	RootClass    string // SequentialAgent or ParallelAgent
	RootVars     []string
	AgentImports string // names imported from google.adk.agents

	Tools        []toolIR // unique by sanitized name, first definition wins
	ToolRefs     []string // every unique tool function name, for the import line
	NeedsLiteLLM bool
	NeedsTyping  bool // any optional parameter in tools.py

	Requirements []string
	Deploy       deployIR
}

type agentIR struct {
	Var         string // sanitized snake_case variable and agent name
	Model       string
	LiteLLM     bool
	Temperature string // float literal
	Instruction string // escaped
	Welcome     string // escaped
	Placeholder string // escaped
	Tools       []string // sanitized tool function names, input order, deduped
	SubAgents   []string // child variables (hierarchical only)
}

type toolIR struct {
	FuncName    string
	SchemaName  string // PascalCase schema class, e.g. SearchDocsInput
	Description string // escaped
	Params      []paramIR
}

type paramIR struct {
	Name        string // sanitized
	PyType      string
	Description string // escaped
	Required    bool
}

type deployIR struct {
	Enabled       bool
	ProjectID     string
	ServiceName   string // kebab-case
	Region        string
	Memory        bool
	CredentialRef string
}

func buildIR(cfg *types.WorkflowConfig, topo *topology.Topology) *projectIR {
	ir := &projectIR{
		Hierarchical:  cfg.Workflow == types.WorkflowHierarchical,
		Collaborative: cfg.Workflow == types.WorkflowCollaborative,
		Requirements:  pymap.Requirements(cfg),
		Deploy:        buildDeployIR(cfg.Deployment),
	}

	// Tools are deduplicated globally by sanitized name across all agents.
	// The first definition in input order wins; a later tool with the same
	// sanitized name is dropped, even when its body differs.
	seenTools := make(map[string]bool)
	for i := range cfg.Agents {
		for j := range cfg.Agents[i].Tools {
			t := &cfg.Agents[i].Tools[j]
			fn := sanitize.ToSnakeCase(t.Name)
			if seenTools[fn] {
				continue
			}
			seenTools[fn] = true
			ir.Tools = append(ir.Tools, buildToolIR(t, fn, ir))
			ir.ToolRefs = append(ir.ToolRefs, fn)
		}
	}

	vars := make([]string, len(cfg.Agents))
	for i := range cfg.Agents {
		vars[i] = sanitize.ToSnakeCase(cfg.Agents[i].Name)
	}

	for _, i := range topo.EmitOrder() {
		a := &cfg.Agents[i]
		ag := agentIR{
			Var:         vars[i],
			Model:       a.Model,
			LiteLLM:     pymap.IsLiteLLMModel(a.Model),
			Temperature: strconv.FormatFloat(a.Temperature, 'g', -1, 64),
			Instruction: sanitize.EscapeStringLiteral(a.SystemPrompt),
			Welcome:     sanitize.EscapeStringLiteral(a.WelcomeMessage),
			Placeholder: sanitize.EscapeStringLiteral(a.InputPlaceholder),
		}
		if ag.LiteLLM {
			ir.NeedsLiteLLM = true
		}
		seen := make(map[string]bool)
		for j := range a.Tools {
			fn := sanitize.ToSnakeCase(a.Tools[j].Name)
			if !seen[fn] {
				seen[fn] = true
				ag.Tools = append(ag.Tools, fn)
			}
		}
		if ir.Hierarchical {
			for _, c := range topo.Children[i] {
				ag.SubAgents = append(ag.SubAgents, vars[c])
			}
		}
		ir.Agents = append(ir.Agents, ag)
	}

	roots := make([]string, 0, len(topo.Roots))
	for _, r := range topo.Roots {
		roots = append(roots, vars[r])
	}
	switch {
	case ir.Hierarchical && len(roots) == 1:
		ir.SingleRoot = roots[0]
	case ir.Collaborative:
		ir.RootClass = "ParallelAgent"
		ir.RootVars = roots
	default:
		// Sequential chain, or a hierarchical forest whose roots run in
		// input order.
		ir.RootClass = "SequentialAgent"
		ir.RootVars = roots
	}

	ir.AgentImports = "LlmAgent"
	if ir.RootClass != "" {
		ir.AgentImports += ", " + ir.RootClass
	}
	return ir
}

func buildToolIR(t *types.Tool, fn string, ir *projectIR) toolIR {
	out := toolIR{
		FuncName:    fn,
		SchemaName:  sanitize.ToPascalCase(t.Name) + "Input",
		Description: sanitize.EscapeStringLiteral(t.Description),
	}
	for i := range t.Parameters {
		p := &t.Parameters[i]
		out.Params = append(out.Params, paramIR{
			Name:        sanitize.ToSnakeCase(p.Name),
			PyType:      pymap.PythonType(p.Type, p.Required),
			Description: sanitize.EscapeStringLiteral(p.Description),
			Required:    p.Required,
		})
		if !p.Required {
			ir.NeedsTyping = true
		}
	}
	return out
}

func buildDeployIR(d types.DeploymentConfig) deployIR {
	out := deployIR{
		Enabled:       d.ProjectID != "",
		ProjectID:     d.ProjectID,
		ServiceName:   types.DefaultServiceName,
		Region:        d.Region,
		Memory:        d.Memory,
		CredentialRef: d.CredentialRef,
	}
	if d.ServiceName != "" {
		out.ServiceName = sanitize.ToKebabCase(d.ServiceName)
	}
	if out.Region == "" {
		out.Region = types.DefaultRegion
	}
	return out
}
