// Package pymap maps the editor's abstract parameter types to Python types
// and computes the external-library requirements of a generated project.
package pymap

import (
	"strings"

	"Flowsmith/pkg/types"
)

// Manifest entries in emission priority order. Each entry appears at most
// once in a generated requirements file; the file is compared byte-for-byte
// in tests, so both membership and order are fixed here.
const (
	DepBase   = "google-adk"
	DepGemini = "google-genai"
	DepLiteLL = "litellm"
	DepMemory = "google-cloud-aiplatform[adk,agent-engines]"
)

// PythonType returns the Python annotation for an abstract parameter type.
// Non-required parameters wrap in Optional[...]. Unknown types fall back to
// str so emission stays total; the validator reports them separately.
func PythonType(t types.ParamType, required bool) string {
	var base string
	switch t {
	case types.ParamNumeric:
		base = "float"
	case types.ParamBoolean:
		base = "bool"
	default:
		base = "str"
	}
	if !required {
		return "Optional[" + base + "]"
	}
	return base
}

// IsGeminiModel reports whether the model belongs to the cloud-hosted Gemini
// family.
func IsGeminiModel(model string) bool {
	return strings.HasPrefix(model, "gemini-")
}

// IsLiteLLMModel reports whether the model is routed through LiteLLM. The
// two families are disjoint by construction of the supported-model set.
func IsLiteLLMModel(model string) bool {
	return strings.HasPrefix(model, "gpt-") || strings.HasPrefix(model, "claude-")
}

// Requirements computes the deduplicated dependency list for a configuration.
// The base dependency is always present; family dependencies are added when
// any agent selects a model of that family; the memory dependency is added
// when the deployment memory flag is set or any model is cloud-hosted, and
// appears exactly once even when both conditions hold.
func Requirements(cfg *types.WorkflowConfig) []string {
	var gemini, litellm bool
	for i := range cfg.Agents {
		if IsGeminiModel(cfg.Agents[i].Model) {
			gemini = true
		}
		if IsLiteLLMModel(cfg.Agents[i].Model) {
			litellm = true
		}
	}

	deps := []string{DepBase}
	if gemini {
		deps = append(deps, DepGemini)
	}
	if litellm {
		deps = append(deps, DepLiteLL)
	}
	if cfg.Deployment.Memory || gemini {
		deps = append(deps, DepMemory)
	}
	return deps
}
