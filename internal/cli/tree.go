package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/structdoc/internal/config"
	"github.com/mvp-joe/structdoc/internal/tree"
)

var (
	treeDirFlag    string
	treeOutFlag    string
	treeReadmeFlag string
)

// Markers bounding the README section the tree is spliced into.
const (
	readmeStartMarker = "## Project File Structure"
	readmeEndMarker   = "## "
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render a directory tree and write it to a file",
	Long: `Tree renders an ASCII tree of a directory, skipping configured names and
compiled Python files, and writes it to a text file. With --readme it also
replaces the "## Project File Structure" section of the given README with a
collapsible block containing the tree.`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVar(&treeDirFlag, "dir", ".", "Directory to render")
	treeCmd.Flags().StringVar(&treeOutFlag, "write-to", "tree_structure.txt", "File the tree is written to")
	treeCmd.Flags().StringVar(&treeReadmeFlag, "readme", "", "README file to splice the tree into (optional)")
}

func runTree(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(treeDirFlag)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %q does not exist or is not a directory", treeDirFlag)
	}

	cfg, err := config.LoadConfigFromDir(dir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	content, err := tree.Generate(dir, cfg.Tree.Exclude)
	if err != nil {
		return fmt.Errorf("failed to generate tree: %w", err)
	}
	content = tree.Clean(content)

	if err := tree.WriteFile(content, treeOutFlag); err != nil {
		return err
	}
	fmt.Printf("Tree structure written to %s\n", treeOutFlag)

	if treeReadmeFlag != "" {
		if err := tree.SpliceReadme(content, treeReadmeFlag, readmeStartMarker, readmeEndMarker); err != nil {
			return err
		}
		fmt.Printf("Updated %s with tree structure\n", treeReadmeFlag)
	}

	return nil
}
