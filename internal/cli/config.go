/*
Copyright © 2026 Flowsmith Authors
*/
package cli

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// CLIConfig holds user-level defaults stored outside any single workflow.
type CLIConfig struct {
	OutputDir string `yaml:"output_dir,omitempty"`
}

func getGlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flowsmith", "config.yaml")
}

// LoadEffectiveConfig merges the global config file with environment
// overrides. Missing files are not an error; defaults apply.
func LoadEffectiveConfig() CLIConfig {
	var cfg CLIConfig

	if path := getGlobalConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}
	if dir := os.Getenv("FLOWSMITH_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated"
	}
	return cfg
}

func saveConfig(path string, cfg CLIConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var configCmd = &cobra.Command{
	Use:   "config set-output <dir>",
	Short: "Set the default output directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "set-output" {
			return cmd.Usage()
		}
		cfg := LoadEffectiveConfig()
		cfg.OutputDir = args[1]
		if err := saveConfig(getGlobalConfigPath(), cfg); err != nil {
			return err
		}
		pterm.Success.Printfln("Default output directory set to %s", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
