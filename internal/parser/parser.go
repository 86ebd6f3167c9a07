// Package parser loads editor-exported workflow configurations from YAML and
// normalizes them for the compiler.
package parser

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"Flowsmith/pkg/types"
)

// ParseYAML reads a workflow configuration file and normalizes it: workflow
// type defaults to sequential, and agents, tools and parameters without an id
// get a generated one so later references stay stable.
func ParseYAML(path string) (*types.WorkflowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read workflow file")
	}

	config := types.WorkflowConfig{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "parse workflow file")
	}

	normalize(&config)
	if !config.Workflow.Valid() {
		return nil, errors.Newf("unknown workflow type: %s", config.Workflow)
	}
	return &config, nil
}

func normalize(config *types.WorkflowConfig) {
	if config.Workflow == "" {
		config.Workflow = types.WorkflowSequential
	} else {
		config.Workflow = types.WorkflowType(strings.ToLower(string(config.Workflow)))
	}

	for i := range config.Agents {
		agent := &config.Agents[i]
		if agent.ID == "" {
			agent.ID = uuid.New().String()
		}
		for j := range agent.Tools {
			tool := &agent.Tools[j]
			if tool.ID == "" {
				tool.ID = uuid.New().String()
			}
			for k := range tool.Parameters {
				if tool.Parameters[k].ID == "" {
					tool.Parameters[k].ID = uuid.New().String()
				}
			}
		}
	}
}
