package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mvp-joe/structdoc/internal/extract"
	"github.com/mvp-joe/structdoc/internal/scan"
)

// Listing renders the module-level function documentation. Output is sorted by
// package, then module, then function name, independent of discovery order.
func Listing(functions map[string][]scan.ModuleFunctions) string {
	lines := []string{"Module-Level Functions Documentation", strings.Repeat("=", 40), ""}

	packages := make([]string, 0, len(functions))
	for pkg := range functions {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	for _, pkg := range packages {
		lines = append(lines, fmt.Sprintf("Package: %s", pkg))

		entries := append([]scan.ModuleFunctions(nil), functions[pkg]...)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Module < entries[j].Module })

		for _, entry := range entries {
			lines = append(lines, fmt.Sprintf("  Module: %s", entry.Module))

			names := make([]string, 0, len(entry.Functions))
			for name := range entry.Functions {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				lines = append(lines, "    - "+functionLine(entry.Functions[name]))
			}
			lines = append(lines, "")
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// functionLine formats "name(params) -> ReturnType [Decorators: d1, d2]",
// omitting the arrow when there is no return annotation and the decorator
// suffix when no decorators were found.
func functionLine(fn extract.FunctionRecord) string {
	line := fmt.Sprintf("%s(%s)", fn.Name, paramList(fn.Signature))
	if fn.Signature.Return != "" {
		line += " -> " + fn.Signature.Return
	}
	if len(fn.Decorators) > 0 {
		line += fmt.Sprintf(" [Decorators: %s]", strings.Join(fn.Decorators, ", "))
	}
	return line
}
