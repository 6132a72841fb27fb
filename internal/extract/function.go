package extract

import (
	"strings"

	"github.com/mvp-joe/structdoc/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Functions extracts module-level function definitions only. Functions nested
// inside other functions, classes, or conditional blocks are not visited.
// Decorated functions sit under a decorated_definition wrapper at the module
// level; the wrapper is unwrapped and its decorators recorded in order.
func Functions(t *parser.Tree) map[string]FunctionRecord {
	source := t.Source()
	funcs := make(map[string]FunctionRecord)

	root := t.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(uint(i))

		fn := stmt
		var decorators []string
		if stmt.Kind() == "decorated_definition" {
			fn = stmt.ChildByFieldName("definition")
			decorators = decoratorList(stmt, source)
		}
		if fn == nil || fn.Kind() != "function_definition" {
			continue
		}

		name := parser.NodeText(fn.ChildByFieldName("name"), source)
		if name == "" {
			continue
		}

		// No receiver exists at module level, so nothing is excluded.
		funcs[name] = FunctionRecord{
			Name:       name,
			Signature:  signature(fn, source, false),
			Decorators: decorators,
		}
	}

	return funcs
}

// decoratorList renders each decorator expression of a decorated_definition.
// A decorator that cannot be rendered is omitted, not replaced.
func decoratorList(node *sitter.Node, source []byte) []string {
	var decorators []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(uint(i))
		if child.Kind() != "decorator" {
			continue
		}
		text, ok := ExprText(child, source)
		if !ok {
			continue
		}
		decorators = append(decorators, strings.TrimPrefix(text, "@"))
	}
	return decorators
}
