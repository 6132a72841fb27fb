package render

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/structdoc/internal/extract"
	"github.com/mvp-joe/structdoc/internal/scan"
)

// Diagram renders the aggregated class records as PlantUML source. Packages
// appear in discovery order; when two classes in the same package share a
// name, each one's display name gets its module appended in parentheses.
func Diagram(packageOrder []string, classes map[string][]scan.ClassEntry) string {
	var sb strings.Builder

	sb.WriteString("@startuml\n")
	sb.WriteString("skinparam pageMargin 50\n")
	sb.WriteString("skinparam pageWidth 3000\n")
	sb.WriteString("left to right direction\n")
	sb.WriteString("direction LR\n")

	for _, pkg := range packageOrder {
		entries := classes[pkg]
		if len(entries) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("package %s {\n", pkg))

		nameCounts := make(map[string]int)
		for _, entry := range entries {
			nameCounts[entry.Class.Name]++
		}

		for _, entry := range entries {
			displayName := entry.Class.Name
			if nameCounts[entry.Class.Name] > 1 {
				displayName = fmt.Sprintf("%s (%s)", entry.Class.Name, entry.Module)
			}

			sb.WriteString(fmt.Sprintf("  class %s {\n", displayName))
			for _, attr := range entry.Class.Attributes {
				sb.WriteString(fmt.Sprintf("    + %s\n", attr))
			}
			for _, attr := range entry.Class.PrivateAttributes {
				sb.WriteString(fmt.Sprintf("    - %s\n", attr))
			}
			for _, m := range entry.Class.Methods {
				sb.WriteString(fmt.Sprintf("    + %s\n", methodLine(m)))
			}
			for _, m := range entry.Class.PrivateMethods {
				sb.WriteString(fmt.Sprintf("    - %s\n", methodLine(m)))
			}
			sb.WriteString("  }\n")
		}

		sb.WriteString("}\n")
	}

	sb.WriteString("@enduml")
	return sb.String()
}

// methodLine formats "name(param, param: Type) : ReturnType", dropping the
// return suffix when no annotation was found.
func methodLine(m extract.Method) string {
	line := fmt.Sprintf("%s(%s)", m.Name, paramList(m.Signature))
	if m.Signature.Return != "" {
		line += " : " + m.Signature.Return
	}
	return line
}

// paramList joins parameters as "name" or "name: Type".
func paramList(sig extract.Signature) string {
	parts := make([]string, 0, len(sig.Params))
	for _, p := range sig.Params {
		if p.Type != "" {
			parts = append(parts, p.Name+": "+p.Type)
		} else {
			parts = append(parts, p.Name)
		}
	}
	return strings.Join(parts, ", ")
}
