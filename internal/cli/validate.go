/*
Copyright © 2026 Flowsmith Authors
*/
package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"Flowsmith/internal/parser"
	"Flowsmith/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <workflow.yaml>",
	Short: "Validate a workflow configuration",
	Long: `Validate checks a workflow configuration for identifier, range and
deployment problems without generating anything.

Every issue is reported in one pass with the path of the offending field,
so the configuration can be fixed in a single round.

Examples:
  flowsmith validate workflow.yaml
  flowsmith validate examples/hierarchical.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := parser.ParseYAML(args[0])
		if err != nil {
			return err
		}

		res := validate.Validate(config)
		printIssues(res)

		if !res.OK() {
			return fmt.Errorf("%d validation error(s)", len(res.Errors))
		}
		pterm.Success.Printfln("Workflow is valid (%d agents, %s mode)",
			len(config.Agents), config.Workflow)
		return nil
	},
}

func printIssues(res validate.Result) {
	for _, issue := range res.Errors {
		pterm.Error.Printfln("%s%s", pathPrefix(issue.Path), issue.Message)
	}
	for _, issue := range res.Warnings {
		pterm.Warning.Printfln("%s%s", pathPrefix(issue.Path), issue.Message)
	}
}

func pathPrefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
