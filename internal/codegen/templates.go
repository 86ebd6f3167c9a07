package codegen

import (
	"bytes"
	"strings"
	"text/template"
)

// render executes one artifact template against the project IR.
func render(name, tmpl string, ir *projectIR) (string, error) {
	t, err := template.New(name).Funcs(template.FuncMap{
		"join":      strings.Join,
		"signature": pythonSignature,
	}).Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ir); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderRequirements(deps []string) string {
	return strings.Join(deps, "\n") + "\n"
}

// pythonSignature builds a def parameter list. Python requires defaulted
// parameters after non-defaulted ones, so optional parameters are moved to
// the end while required parameters keep their relative order.
func pythonSignature(t toolIR) string {
	var parts []string
	for _, p := range t.Params {
		if p.Required {
			parts = append(parts, p.Name+": "+p.PyType)
		}
	}
	for _, p := range t.Params {
		if !p.Required {
			parts = append(parts, p.Name+": "+p.PyType+" = None")
		}
	}
	return strings.Join(parts, ", ")
}

const agentTemplate = `"""Agent definitions generated from the workflow configuration.

This file is regenerated on every build; change the workflow configuration
instead of editing it by hand.
"""

from google.adk.agents import {{.AgentImports}}
{{- if .NeedsLiteLLM}}
from google.adk.models.lite_llm import LiteLlm
{{- end}}
{{- if .ToolRefs}}

from tools import {{join .ToolRefs ", "}}
{{- end}}
{{range .Agents}}
{{.Var}} = LlmAgent(
    name="{{.Var}}",
    model={{if .LiteLLM}}LiteLlm(model="{{.Model}}"){{else}}"{{.Model}}"{{end}},
    instruction="{{.Instruction}}",
    temperature={{.Temperature}},
{{- if .Tools}}
    tools=[{{join .Tools ", "}}],
{{- end}}
{{- if .SubAgents}}
    sub_agents=[{{join .SubAgents ", "}}],
{{- end}}
)
{{end}}
{{- if .SingleRoot}}
root_agent = {{.SingleRoot}}
{{- else}}
root_agent = {{.RootClass}}(
    name="workflow_root",
    sub_agents=[{{join .RootVars ", "}}],
)
{{- end}}

UI_CONFIG = {
{{- range .Agents}}
    "{{.Var}}": {
        "welcome_message": "{{.Welcome}}",
        "input_placeholder": "{{.Placeholder}}",
    },
{{- end}}
}
`

const toolsTemplate = `"""Tool stubs generated from the workflow configuration.

Each function is a stub: fill in the body and keep the signature unchanged so
the agent definitions stay in sync.
"""
{{- if not .Tools}}

# No tools defined for this workflow.
{{else}}
{{- if .NeedsTyping}}
from typing import Optional
{{end}}
from pydantic import BaseModel

{{range .Tools}}
class {{.SchemaName}}(BaseModel):
    """{{.Description}}"""
{{- range .Params}}
    {{.Name}}: {{.PyType}}{{if not .Required}} = None{{end}}
{{- end}}
{{- if not .Params}}
    pass
{{- end}}


def {{.FuncName}}({{signature .}}) -> str:
    """{{.Description}}
{{- if .Params}}

    Args:
{{- range .Params}}
        {{.Name}}: {{.Description}}
{{- end}}
{{- end}}
    """
    raise NotImplementedError("{{.FuncName}} is not implemented yet")

{{end}}
{{- end}}`

const readmeTemplate = `# Agent Workflow

Generated multi-agent project for the Google Agent Development Kit (ADK).
This directory is a complete Python project; regenerate it from the workflow
configuration rather than editing generated files directly.

## Agents
{{range .Agents}}
- {{.Var}} ({{.Model}})
{{- end}}

## Running locally

    python -m venv .venv
    source .venv/bin/activate
    pip install -r requirements.txt
    adk web

The development UI starts on http://localhost:8000.
{{- if .Deploy.CredentialRef}}

## Credentials

API credentials are resolved from the "{{.Deploy.CredentialRef}}" secret
reference configured in your environment. They are never embedded in the
generated files.
{{- end}}
{{- if .Deploy.Enabled}}

## Deployment

Build and deploy to Cloud Run in project {{.Deploy.ProjectID}}:

    ./deploy.sh

Or submit the build spec directly:

    gcloud builds submit --config cloudbuild.yaml --project {{.Deploy.ProjectID}}
{{- end}}
`

const dockerfileTemplate = `FROM python:3.12-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 8080
CMD ["adk", "api_server", "--host", "0.0.0.0", "--port", "8080"]
`

const gcloudIgnoreTemplate = `.gcloudignore
.git
.gitignore
__pycache__/
*.pyc
.venv/
venv/
.env
`

const cloudBuildTemplate = `steps:
  - id: build
    name: gcr.io/cloud-builders/docker
    args:
      - build
      - -t
      - gcr.io/{{.Deploy.ProjectID}}/{{.Deploy.ServiceName}}
      - .
  - id: push
    name: gcr.io/cloud-builders/docker
    args:
      - push
      - gcr.io/{{.Deploy.ProjectID}}/{{.Deploy.ServiceName}}
  - id: deploy
    name: gcr.io/google.com/cloudsdktool/cloud-sdk
    entrypoint: gcloud
    args:
      - run
      - deploy
      - {{.Deploy.ServiceName}}
      - --image=gcr.io/{{.Deploy.ProjectID}}/{{.Deploy.ServiceName}}
      - --region={{.Deploy.Region}}
      - --project={{.Deploy.ProjectID}}
      - --allow-unauthenticated
{{- if .Deploy.Memory}}
      - --set-env-vars=AGENT_ENGINE_MEMORY=1
{{- end}}
images:
  - gcr.io/{{.Deploy.ProjectID}}/{{.Deploy.ServiceName}}
`

const deployScriptTemplate = `#!/usr/bin/env bash
set -euo pipefail

PROJECT_ID="{{.Deploy.ProjectID}}"
SERVICE_NAME="{{.Deploy.ServiceName}}"
REGION="{{.Deploy.Region}}"

gcloud builds submit --tag "gcr.io/${PROJECT_ID}/${SERVICE_NAME}" --project "${PROJECT_ID}"

gcloud run deploy "${SERVICE_NAME}" \
  --image "gcr.io/${PROJECT_ID}/${SERVICE_NAME}" \
  --region "${REGION}" \
  --project "${PROJECT_ID}" \
{{- if .Deploy.Memory}}
  --set-env-vars "AGENT_ENGINE_MEMORY=1" \
{{- end}}
  --allow-unauthenticated
`
