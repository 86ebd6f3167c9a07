/*
Copyright © 2026 Flowsmith Authors
*/
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"Flowsmith/internal/codegen"
	"Flowsmith/internal/logger"
	"Flowsmith/internal/parser"
	"Flowsmith/internal/validate"
)

var (
	outputDir string
	watchMode bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <workflow.yaml>",
	Short: "Generate an ADK project from a workflow configuration",
	Long: `Generate validates a workflow configuration and emits a complete
Python ADK project into the output directory.

Validation errors block generation; warnings are shown but do not.
With --watch the command stays running and regenerates whenever the
configuration file changes.

Examples:
  flowsmith generate workflow.yaml
  flowsmith generate workflow.yaml -o ./out
  flowsmith generate workflow.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputDir == "" {
			outputDir = LoadEffectiveConfig().OutputDir
		}

		if err := compile(args[0], outputDir); err != nil {
			return err
		}
		if watchMode {
			return watch(args[0], outputDir)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	generateCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "regenerate on configuration changes")
	rootCmd.AddCommand(generateCmd)
}

// compile runs the full pipeline once: parse, validate, generate, write.
func compile(workflowFile, dir string) error {
	config, err := parser.ParseYAML(workflowFile)
	if err != nil {
		return err
	}

	res := validate.Validate(config)
	printIssues(res)
	if !res.OK() {
		return fmt.Errorf("%d validation error(s); nothing generated", len(res.Errors))
	}

	files, err := codegen.Generate(config)
	if err != nil {
		return err
	}
	if err := writeFiles(dir, files); err != nil {
		return err
	}

	pterm.Success.Printfln("Generated %d files in %s", len(files), dir)
	return nil
}

func writeFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		perm := os.FileMode(0644)
		if name == codegen.FileDeployScript {
			perm = 0755
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), perm); err != nil {
			return err
		}
		logger.Log.Debugw("wrote file", "path", path, "bytes", len(files[name]))
	}
	return nil
}

// watch recompiles whenever the workflow file changes. Editors often emit
// several events per save, so changes are debounced before recompiling.
func watch(workflowFile, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory rather than the file: many editors replace the
	// file on save, which drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(workflowFile)); err != nil {
		return err
	}

	logger.Log.Infow("watching for changes", "file", workflowFile)

	const debounce = 250 * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(workflowFile) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			logger.Log.Debugw("configuration changed", "file", workflowFile)
			if err := compile(workflowFile, dir); err != nil {
				// Keep watching; a broken intermediate save is normal.
				pterm.Error.Printfln("%v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Warnw("watch error", "error", err)
		}
	}
}
