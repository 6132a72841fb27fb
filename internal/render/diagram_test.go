package render

import (
	"testing"

	"github.com/mvp-joe/structdoc/internal/extract"
	"github.com/mvp-joe/structdoc/internal/scan"
	"github.com/stretchr/testify/assert"
)

// Test Plan for Diagram renderer:
// - Empty aggregate renders the PlantUML preamble and @enduml only
// - Class blocks list public then private attributes, then public then
//   private methods, with +/- glyphs
// - Method lines include typed parameters and the return-type suffix
// - Duplicate class names in one package are disambiguated with the module
//   name; unique names render bare
// - Rendering the same aggregate twice yields byte-identical output

func TestDiagram_EmptyAggregate(t *testing.T) {
	t.Parallel()

	out := Diagram(nil, map[string][]scan.ClassEntry{})

	expected := `@startuml
skinparam pageMargin 50
skinparam pageWidth 3000
left to right direction
direction LR
@enduml`
	assert.Equal(t, expected, out)
}

func TestDiagram_ClassBlock(t *testing.T) {
	t.Parallel()

	classes := map[string][]scan.ClassEntry{
		"root": {
			{
				Module: "widgets",
				Class: extract.ClassRecord{
					Name:              "Widget",
					Attributes:        []string{"count"},
					PrivateAttributes: []string{"_dirty"},
					Methods: []extract.Method{
						{Name: "resize", Signature: extract.Signature{
							Params: []extract.Param{{Name: "factor", Type: "float"}},
							Return: "None",
						}},
					},
					PrivateMethods: []extract.Method{
						{Name: "__init__", Signature: extract.Signature{
							Params: []extract.Param{{Name: "name"}},
						}},
					},
				},
			},
		},
	}

	out := Diagram([]string{"root"}, classes)

	expected := `@startuml
skinparam pageMargin 50
skinparam pageWidth 3000
left to right direction
direction LR
package root {
  class Widget {
    + count
    - _dirty
    + resize(factor: float) : None
    - __init__(name)
  }
}
@enduml`
	assert.Equal(t, expected, out)
}

func TestDiagram_DuplicateNamesDisambiguated(t *testing.T) {
	t.Parallel()

	classes := map[string][]scan.ClassEntry{
		"models": {
			{Module: "graph", Class: extract.ClassRecord{Name: "Node"}},
			{Module: "shapes", Class: extract.ClassRecord{Name: "Node"}},
			{Module: "shapes", Class: extract.ClassRecord{Name: "Circle"}},
		},
	}

	out := Diagram([]string{"models"}, classes)

	assert.Contains(t, out, "class Node (graph) {")
	assert.Contains(t, out, "class Node (shapes) {")
	// Uniquely named entries render unmodified.
	assert.Contains(t, out, "class Circle {")
	assert.NotContains(t, out, "Circle (shapes)")
}

func TestDiagram_Idempotent(t *testing.T) {
	t.Parallel()

	classes := map[string][]scan.ClassEntry{
		"root": {
			{Module: "a", Class: extract.ClassRecord{Name: "A", Attributes: []string{"x"}}},
			{Module: "b", Class: extract.ClassRecord{Name: "B", PrivateAttributes: []string{"_y"}}},
		},
		"pkg": {
			{Module: "c", Class: extract.ClassRecord{Name: "C"}},
		},
	}
	order := []string{"root", "pkg"}

	assert.Equal(t, Diagram(order, classes), Diagram(order, classes))
}
