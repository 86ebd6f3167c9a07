package parser

import (
	"os"
	"path/filepath"
	"testing"

	"Flowsmith/pkg/types"
)

func writeWorkflow(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workflow.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseYAML(t *testing.T) {
	path := writeWorkflow(t, `
workflow: hierarchical
agents:
  - id: root
    name: coordinator
    model: gemini-2.0-flash
    temperature: 0.5
    tools:
      - name: search
        parameters:
          - name: query
            type: text
            required: true
  - name: researcher
    parent_id: root
    model: gpt-4o
deployment:
  project_id: my-project-123
  memory: true
`)

	cfg, err := ParseYAML(path)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if cfg.Workflow != types.WorkflowHierarchical {
		t.Errorf("workflow = %q, want hierarchical", cfg.Workflow)
	}
	if len(cfg.Agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(cfg.Agents))
	}
	if cfg.Agents[0].Temperature != 0.5 {
		t.Errorf("temperature = %g, want 0.5", cfg.Agents[0].Temperature)
	}
	if cfg.Agents[1].ParentID != "root" {
		t.Errorf("parent_id = %q, want root", cfg.Agents[1].ParentID)
	}
	if !cfg.Deployment.Memory || cfg.Deployment.ProjectID != "my-project-123" {
		t.Errorf("deployment not parsed: %+v", cfg.Deployment)
	}
}

func TestParseYAMLAppliesDefaults(t *testing.T) {
	path := writeWorkflow(t, `
agents:
  - name: researcher
    model: gemini-2.0-flash
`)

	cfg, err := ParseYAML(path)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if cfg.Workflow != types.WorkflowSequential {
		t.Errorf("workflow should default to sequential, got %q", cfg.Workflow)
	}
	if cfg.Agents[0].Temperature != types.DefaultTemperature {
		t.Errorf("temperature should default to %g, got %g",
			types.DefaultTemperature, cfg.Agents[0].Temperature)
	}
}

func TestParseYAMLAssignsIDs(t *testing.T) {
	path := writeWorkflow(t, `
agents:
  - name: researcher
    model: gemini-2.0-flash
    tools:
      - name: search
        parameters:
          - name: query
            type: text
`)

	cfg, err := ParseYAML(path)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	a := cfg.Agents[0]
	if a.ID == "" || a.Tools[0].ID == "" || a.Tools[0].Parameters[0].ID == "" {
		t.Errorf("missing generated ids: %+v", a)
	}
}

func TestParseYAMLUnknownWorkflowType(t *testing.T) {
	path := writeWorkflow(t, `
workflow: ring
agents:
  - name: researcher
    model: gemini-2.0-flash
`)

	if _, err := ParseYAML(path); err == nil {
		t.Fatal("expected an error for unknown workflow type")
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	path := writeWorkflow(t, "agents: [::bad")
	if _, err := ParseYAML(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestParseYAMLMissingFile(t *testing.T) {
	if _, err := ParseYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for missing file")
	}
}
