package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/structdoc/internal/config"
	"github.com/mvp-joe/structdoc/internal/render"
	"github.com/mvp-joe/structdoc/internal/scan"
)

var (
	rootFlag   string
	outputFlag string
	quietFlag  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate documentation artifacts from a Python codebase",
	Long: `Generate walks a Python project tree and writes three artifacts to the
output directory:

  - uml.txt               PlantUML class diagram source
  - module_functions.txt  module-level functions with signatures and decorators
  - site-content.txt      concatenated HTML/JS/CSS site assets

A file that fails to parse is reported and skipped; the remaining files are
still processed.

Examples:
  # Document the project in ./src, writing artifacts next to it
  structdoc generate --root ./src

  # Write artifacts to a docs folder without progress output
  structdoc generate --root ./src --output ./docs --quiet
`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&rootFlag, "root", "", "Root directory of the Python project (required)")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", ".", "Output folder for the generated files")
	generateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	generateCmd.MarkFlagRequired("root")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rootDir, err := filepath.Abs(rootFlag)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}

	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("root directory %q does not exist or is not a directory", rootFlag)
	}

	// Load configuration from <root>/.structdoc/config.yml
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	outputDir, err := filepath.Abs(outputFlag)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
	}

	if !quietFlag {
		fmt.Printf("Parsing Python project at %q...\n", rootDir)
	}

	scanner, err := scan.New(rootDir, cfg.Paths.Assets, cfg.Paths.Ignore, NewProgressReporter(quietFlag))
	if err != nil {
		return fmt.Errorf("failed to create scanner: %w", err)
	}

	result, err := scanner.Run()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	artifacts := []struct {
		name    string
		label   string
		content string
	}{
		{cfg.Output.Diagram, "PlantUML source (classes)", render.Diagram(result.ClassPackages, result.Classes)},
		{cfg.Output.Functions, "Module-level functions documentation", render.Listing(result.Functions)},
		{cfg.Output.Assets, "Site content documentation", render.Assets(result.Assets)},
	}

	for _, artifact := range artifacts {
		path := filepath.Join(outputDir, artifact.name)
		if err := os.WriteFile(path, []byte(artifact.content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if !quietFlag {
			fmt.Printf("%s saved to: %s\n", artifact.label, path)
		}
	}

	return nil
}
