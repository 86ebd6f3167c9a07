package codegen

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"Flowsmith/internal/topology"
	"Flowsmith/pkg/types"
)

func singleAgentConfig() *types.WorkflowConfig {
	return &types.WorkflowConfig{
		Agents: []types.Agent{
			{
				ID:               "a1",
				Name:             "researcher",
				SystemPrompt:     "You research things.",
				WelcomeMessage:   "Hi! Ask me anything.",
				InputPlaceholder: "Type a question...",
				Model:            "gemini-2.0-flash",
				Temperature:      0.7,
			},
		},
		Workflow: types.WorkflowSequential,
	}
}

func TestGenerateBaseFileSet(t *testing.T) {
	files, err := Generate(singleAgentConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(files) != 6 {
		t.Fatalf("expected exactly 6 files, got %d: %v", len(files), fileNames(files))
	}
	for _, name := range []string{FileAgent, FileTools, FileRequirements, FileReadme, FileDockerfile, FileGcloudIgnore} {
		if _, ok := files[name]; !ok {
			t.Errorf("missing file %s", name)
		}
	}
	if !strings.Contains(files[FileTools], "No tools defined") {
		t.Errorf("tools source should state that no tools are defined, got:\n%s", files[FileTools])
	}
}

func TestGenerateDeploymentFileSet(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Deployment = types.DeploymentConfig{ProjectID: "my-project-123"}

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(files) != 8 {
		t.Fatalf("expected exactly 8 files, got %d: %v", len(files), fileNames(files))
	}
	if !strings.Contains(files[FileCloudBuild], "my-project-123") {
		t.Error("build spec should contain the project id verbatim")
	}
	if !strings.Contains(files[FileDeployScript], "my-project-123") {
		t.Error("deploy script should contain the project id verbatim")
	}
}

func TestGenerateIdempotent(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents = append(cfg.Agents, types.Agent{
		Name:        "writer",
		Model:       "gpt-4o",
		Temperature: 1.2,
		Tools: []types.Tool{{
			Name: "Search Docs",
			Parameters: []types.Parameter{
				{Name: "query", Type: types.ParamText, Required: true},
				{Name: "limit", Type: types.ParamNumeric, Required: false},
			},
		}},
	})
	cfg.Deployment = types.DeploymentConfig{ProjectID: "my-project-123", Memory: true}

	first, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(cfg)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("file sets differ: %v vs %v", fileNames(first), fileNames(second))
	}
	for name, text := range first {
		if second[name] != text {
			t.Errorf("file %s differs between invocations", name)
		}
	}
}

func TestCrossAgentToolDedup(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents[0].Tools = []types.Tool{{
		Name:        "Search Docs",
		Description: "first definition",
	}}
	cfg.Agents = append(cfg.Agents, types.Agent{
		Name:        "writer",
		Model:       "gemini-2.0-flash",
		Temperature: 1.0,
		Tools: []types.Tool{{
			Name:        "search docs", // sanitizes to the same identifier
			Description: "second definition",
		}},
	})

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tools := files[FileTools]
	if got := strings.Count(tools, "def search_docs("); got != 1 {
		t.Fatalf("expected exactly one search_docs definition, got %d:\n%s", got, tools)
	}
	// First occurrence wins; the later same-name definition is dropped.
	if !strings.Contains(tools, "first definition") {
		t.Error("first tool definition should be kept")
	}
	if strings.Contains(tools, "second definition") {
		t.Error("second tool definition should be dropped")
	}
	// Both agents still reference the shared function.
	if got := strings.Count(files[FileAgent], "tools=[search_docs]"); got != 2 {
		t.Errorf("expected both agents to reference search_docs, got %d:\n%s", got, files[FileAgent])
	}
}

func TestToolSchemaAndStub(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents[0].Tools = []types.Tool{{
		Name:        "Search Docs",
		Description: "Search the documentation index.",
		Parameters: []types.Parameter{
			{Name: "limit", Type: types.ParamNumeric, Description: "Max results.", Required: false},
			{Name: "query", Type: types.ParamText, Description: "The search query.", Required: true},
			{Name: "exact", Type: types.ParamBoolean, Required: true},
		},
	}}

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	tools := files[FileTools]

	for _, want := range []string{
		"from typing import Optional",
		"from pydantic import BaseModel",
		"class SearchDocsInput(BaseModel):",
		"limit: Optional[float] = None",
		"query: str",
		"exact: bool",
		// Required parameters precede optional ones in the signature.
		"def search_docs(query: str, exact: bool, limit: Optional[float] = None) -> str:",
		"Search the documentation index.",
		"The search query.",
	} {
		if !strings.Contains(tools, want) {
			t.Errorf("tools source missing %q:\n%s", want, tools)
		}
	}
}

func TestAgentSourceEscaping(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents[0].SystemPrompt = "Say \"hello\"\nthen C:\\done"

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(files[FileAgent], `instruction="Say \"hello\"\nthen C:\\done"`) {
		t.Errorf("prompt not escaped correctly:\n%s", files[FileAgent])
	}
}

func TestAgentSourceSequential(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents = append(cfg.Agents, types.Agent{
		Name: "writer", Model: "gemini-2.0-flash", Temperature: 1,
	})

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := files[FileAgent]

	for _, want := range []string{
		"from google.adk.agents import LlmAgent, SequentialAgent",
		`researcher = LlmAgent(`,
		`model="gemini-2.0-flash"`,
		"temperature=0.7,",
		"root_agent = SequentialAgent(",
		"sub_agents=[researcher, writer],",
		`"welcome_message": "Hi! Ask me anything.",`,
		`"input_placeholder": "Type a question...",`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("agent source missing %q:\n%s", want, src)
		}
	}
}

func TestAgentSourceCollaborative(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents = append(cfg.Agents, types.Agent{
		Name: "critic", Model: "gemini-2.0-flash", Temperature: 1,
	})
	cfg.Workflow = types.WorkflowCollaborative

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(files[FileAgent], "root_agent = ParallelAgent(") {
		t.Errorf("collaborative mode should emit a peer set:\n%s", files[FileAgent])
	}
}

func TestAgentSourceHierarchical(t *testing.T) {
	cfg := &types.WorkflowConfig{
		Workflow: types.WorkflowHierarchical,
		Agents: []types.Agent{
			{ID: "r", Name: "coordinator", Model: "gemini-2.0-flash", Temperature: 1},
			{ID: "c1", Name: "researcher", ParentID: "r", Model: "gemini-2.0-flash", Temperature: 1},
			{ID: "c2", Name: "writer", ParentID: "r", Model: "gemini-2.0-flash", Temperature: 1},
		},
	}

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := files[FileAgent]

	if !strings.Contains(src, "sub_agents=[researcher, writer],") {
		t.Errorf("coordinator should list its children:\n%s", src)
	}
	if !strings.Contains(src, "root_agent = coordinator") {
		t.Errorf("single-root tree should alias the root:\n%s", src)
	}
	// Children must be declared before the parent references them.
	if strings.Index(src, "researcher = LlmAgent(") > strings.Index(src, "coordinator = LlmAgent(") {
		t.Errorf("children must be emitted before their parent:\n%s", src)
	}
}

func TestGenerateRejectsCyclicTopology(t *testing.T) {
	cfg := &types.WorkflowConfig{
		Workflow: types.WorkflowHierarchical,
		Agents: []types.Agent{
			{ID: "a", Name: "alpha", ParentID: "b", Model: "gemini-2.0-flash", Temperature: 1},
			{ID: "b", Name: "beta", ParentID: "a", Model: "gemini-2.0-flash", Temperature: 1},
		},
	}

	files, err := Generate(cfg)
	if !errors.Is(err, topology.ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	if files != nil {
		t.Error("no partial output should be returned on failure")
	}
}

func TestLiteLLMModels(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Agents[0].Model = "gpt-4o"

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	src := files[FileAgent]
	if !strings.Contains(src, "from google.adk.models.lite_llm import LiteLlm") {
		t.Error("LiteLLM import missing")
	}
	if !strings.Contains(src, `model=LiteLlm(model="gpt-4o"),`) {
		t.Errorf("LiteLLM model constructor missing:\n%s", src)
	}
}

func TestRequirementsFile(t *testing.T) {
	cfg := singleAgentConfig() // gemini model implies the memory dependency
	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	want := "google-adk\ngoogle-genai\ngoogle-cloud-aiplatform[adk,agent-engines]\n"
	if files[FileRequirements] != want {
		t.Errorf("requirements = %q, want %q", files[FileRequirements], want)
	}
}

func TestReadmeCredentialReference(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Deployment = types.DeploymentConfig{
		ProjectID:     "my-project-123",
		CredentialRef: "projects/my-project-123/secrets/api-key",
	}

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(files[FileReadme], "projects/my-project-123/secrets/api-key") {
		t.Error("readme should reference the credential by name")
	}
	// The reference appears in documentation only, never in source or config.
	for _, name := range []string{FileAgent, FileTools, FileCloudBuild, FileDeployScript} {
		if strings.Contains(files[name], "secrets/api-key") {
			t.Errorf("credential reference leaked into %s", name)
		}
	}
}

func TestServiceNameKebabCased(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Deployment = types.DeploymentConfig{
		ProjectID:   "my-project-123",
		ServiceName: "My Research Service",
	}

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(files[FileDeployScript], `SERVICE_NAME="my-research-service"`) {
		t.Errorf("service name should be kebab-cased:\n%s", files[FileDeployScript])
	}
}

func TestMemoryFlagInDeployArtifacts(t *testing.T) {
	cfg := singleAgentConfig()
	cfg.Deployment = types.DeploymentConfig{ProjectID: "my-project-123", Memory: true}

	files, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(files[FileCloudBuild], "AGENT_ENGINE_MEMORY=1") {
		t.Error("build spec should enable the memory feature")
	}
	if !strings.Contains(files[FileDeployScript], "AGENT_ENGINE_MEMORY=1") {
		t.Error("deploy script should enable the memory feature")
	}
}

func fileNames(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	return names
}
