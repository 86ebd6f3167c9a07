// Package validate is the preflight phase of the compiler: it scans a
// workflow configuration and reports every identifier, range and deployment
// problem it can find in a single pass. It never mutates the configuration
// and never stops early: issues are data, not exceptions, and the caller
// decides which severities block generation.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"Flowsmith/internal/sanitize"
	"Flowsmith/pkg/types"
)

// Severity classifies an issue. Errors make the configuration uncompilable;
// warnings describe something the compiler will silently repair (typically by
// sanitizing a name).
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding. Path locates the offending field using
// index notation, e.g. "agents[0].tools[2].parameters[1].name", so the
// editor UI can highlight it.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
}

// Result groups the issues of one validation pass by severity.
type Result struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether the configuration can be generated as-is.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// All returns every issue, errors first, in discovery order.
func (r Result) All() []Issue {
	out := make([]Issue, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}

func (r *Result) errorf(path, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	})
}

func (r *Result) warnf(path, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	})
}

var (
	projectIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)
	regionPattern    = regexp.MustCompile(`^[a-z]+-[a-z]+[0-9]$`)
)

// Validate checks a full workflow configuration and returns every issue
// found. It is pure: cfg is read but never modified, and well-typed input
// never causes a panic regardless of content.
func Validate(cfg *types.WorkflowConfig) Result {
	var res Result
	if cfg == nil {
		res.errorf("", "configuration is nil")
		return res
	}

	// Agent names are collected up front so tool checks can flag
	// collisions with agents declared later in the list.
	agentNames := make(map[string]bool, len(cfg.Agents))
	for i := range cfg.Agents {
		if name := strings.TrimSpace(cfg.Agents[i].Name); name != "" {
			agentNames[sanitize.ToSnakeCase(name)] = true
		}
	}

	agentScope := newScope()
	for i := range cfg.Agents {
		validateAgent(&cfg.Agents[i], i, agentScope, agentNames, &res)
	}

	validateDeployment(cfg.Deployment, &res)
	return res
}

func validateAgent(a *types.Agent, i int, agentScope *scope, agentNames map[string]bool, res *Result) {
	base := fmt.Sprintf("agents[%d]", i)
	checkIdentifier(a.Name, "agent name", base+".name", agentScope, res)

	if a.Temperature < 0 || a.Temperature > 2 {
		res.errorf(base+".temperature", "temperature %g is out of range [0, 2]", a.Temperature)
	}
	if !supportedModels[a.Model] {
		res.errorf(base+".model", "model %q is not supported (supported: %s)",
			a.Model, strings.Join(SupportedModels(), ", "))
	}

	toolScope := newScope()
	for j := range a.Tools {
		validateTool(&a.Tools[j], fmt.Sprintf("%s.tools[%d]", base, j), toolScope, agentNames, res)
	}
}

func validateTool(tool *types.Tool, base string, toolScope *scope, agentNames map[string]bool, res *Result) {
	checkIdentifier(tool.Name, "tool name", base+".name", toolScope, res)

	// Agents and tool functions share one module namespace in the generated
	// source; an agent definition with the same identifier shadows the
	// imported tool function.
	if name := strings.TrimSpace(tool.Name); name != "" {
		if fn := sanitize.ToSnakeCase(name); agentNames[fn] {
			res.warnf(base+".name",
				"tool name %q shares the identifier %q with an agent; the agent definition will shadow the tool function",
				tool.Name, fn)
		}
	}

	paramScope := newScope()
	for k := range tool.Parameters {
		p := &tool.Parameters[k]
		path := fmt.Sprintf("%s.parameters[%d]", base, k)
		checkIdentifier(p.Name, "parameter name", path+".name", paramScope, res)
		switch p.Type {
		case types.ParamText, types.ParamNumeric, types.ParamBoolean:
		default:
			res.errorf(path+".type", "unknown parameter type %q", p.Type)
		}
	}
}

// checkIdentifier applies the identifier rules shared by agent, tool and
// parameter names. Exactly one of the empty/keyword checks fires per name;
// the canonical-form warning is advisory and only emitted for names that are
// otherwise usable. The keyword check runs on both the raw name and its
// sanitized form: "Class" is not a keyword itself, but it sanitizes to one
// and would produce invalid generated source. Duplicate detection compares
// sanitized forms, since two raw names that sanitize identically would
// collide in the generated source.
func checkIdentifier(raw, kind, path string, sc *scope, res *Result) {
	name := strings.TrimSpace(raw)
	if name == "" {
		res.errorf(path, "%s must not be empty", kind)
		return
	}
	if pythonKeywords[name] {
		res.errorf(path, "%s %q is a reserved keyword and must be a valid identifier", kind, name)
		return
	}
	sanitized := sanitize.ToSnakeCase(name)
	if pythonKeywords[sanitized] {
		res.errorf(path, "%s %q sanitizes to the reserved keyword %q and must be a valid identifier",
			kind, name, sanitized)
		return
	}
	if !sanitize.IsCanonical(name) {
		res.warnf(path, "%s %q will be generated as %q", kind, name, sanitized)
	}
	if !sc.add(sanitized) {
		res.errorf(path, "duplicate %s: %q collides with another name in the same scope", kind, name)
	}
}

func validateDeployment(d types.DeploymentConfig, res *Result) {
	if d.Empty() {
		return
	}
	if d.ProjectID == "" {
		res.warnf("deployment.project_id",
			"deployment settings are present but project id is missing; deployment artifacts will not be generated")
		return
	}
	if !projectIDPattern.MatchString(d.ProjectID) {
		res.errorf("deployment.project_id", "project id %q is not a valid project identifier", d.ProjectID)
	}
	if d.Region != "" && !regionPattern.MatchString(d.Region) {
		res.errorf("deployment.region", "region %q is not a valid region", d.Region)
	}
}

// scope tracks sanitized names already seen within one naming scope.
type scope struct {
	seen map[string]bool
}

func newScope() *scope {
	return &scope{seen: make(map[string]bool)}
}

// add records a sanitized name and reports whether it was new.
func (s *scope) add(name string) bool {
	if s.seen[name] {
		return false
	}
	s.seen[name] = true
	return true
}
