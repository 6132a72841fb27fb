package tree

import (
	"fmt"
	"os"
	"strings"
)

// SpliceReadme replaces the README section between startMarker and endMarker
// with the tree content wrapped in a collapsible fenced block. The marker
// lines themselves are kept. An endMarker that never appears leaves everything
// after startMarker replaced by the block.
func SpliceReadme(treeContent, readmePath, startMarker, endMarker string) error {
	raw, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", readmePath, err)
	}

	var out strings.Builder
	inSection := false
	for _, line := range strings.SplitAfter(string(raw), "\n") {
		switch {
		case strings.Contains(line, startMarker) && !inSection:
			inSection = true
			out.WriteString(line)
			out.WriteString("\n<details>\n<summary>Click to view the full project file structure</summary>\n\n")
			out.WriteString("```\n")
			out.WriteString(treeContent)
			out.WriteString("\n```\n</details>\n\n")
		case inSection && strings.Contains(line, endMarker):
			inSection = false
			out.WriteString(line)
		case inSection:
			// Old section content is dropped.
		default:
			out.WriteString(line)
		}
	}

	if err := os.WriteFile(readmePath, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("updating %s: %w", readmePath, err)
	}
	return nil
}
