package render

import (
	"sort"
	"strings"

	"github.com/mvp-joe/structdoc/internal/scan"
)

// Assets renders the site-content document: every collected asset's relative
// path followed by its full content, sorted by path, with a banner header per
// file and a separator line after each.
func Assets(files []scan.AssetFile) string {
	lines := []string{"Site Content Documentation", strings.Repeat("=", 40), ""}

	sorted := append([]scan.AssetFile(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, file := range sorted {
		header := "File: " + file.Path
		lines = append(lines, header)
		lines = append(lines, strings.Repeat("-", len(header)))
		lines = append(lines, file.Content)
		lines = append(lines, "\n"+strings.Repeat("=", 40)+"\n")
	}

	return strings.Join(lines, "\n")
}
