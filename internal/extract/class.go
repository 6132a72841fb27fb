package extract

import (
	"sort"

	"github.com/mvp-joe/structdoc/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// initializerName is the constructor whose body is scanned for instance
// attributes. It is the only dunder method that is not skipped.
const initializerName = "__init__"

// Classes extracts every class definition reachable from the tree root,
// including classes nested inside functions, conditionals, or other classes.
// Records keep discovery order; a repeated class name within the same file
// replaces the earlier record in place.
func Classes(t *parser.Tree, module, pkg string) []ClassRecord {
	source := t.Source()

	var records []ClassRecord
	index := make(map[string]int)

	parser.Walk(t.Root(), func(n *sitter.Node) bool {
		if n.Kind() == "class_definition" {
			rec, ok := extractClass(n, source, module, pkg)
			if ok {
				if i, seen := index[rec.Name]; seen {
					records[i] = rec
				} else {
					index[rec.Name] = len(records)
					records = append(records, rec)
				}
			}
		}
		return true
	})

	return records
}

// extractClass builds one ClassRecord from a class_definition node.
func extractClass(node *sitter.Node, source []byte, module, pkg string) (ClassRecord, bool) {
	name := parser.NodeText(node.ChildByFieldName("name"), source)
	if name == "" {
		return ClassRecord{}, false
	}

	attrs := make(map[string]struct{})
	privAttrs := make(map[string]struct{})
	var methods, privMethods []Method

	body := node.ChildByFieldName("body")
	if body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			stmt := body.Child(uint(i))

			switch stmt.Kind() {
			case "expression_statement":
				collectBodyAssignments(stmt, source, attrs, privAttrs)

			case "function_definition", "decorated_definition":
				fn := stmt
				if fn.Kind() == "decorated_definition" {
					fn = fn.ChildByFieldName("definition")
				}
				if fn == nil || fn.Kind() != "function_definition" {
					continue
				}

				mname := parser.NodeText(fn.ChildByFieldName("name"), source)
				if mname == "" {
					continue
				}
				if isDunder(mname) && mname != initializerName {
					continue
				}

				m := Method{Name: mname, Signature: signature(fn, source, true)}
				if IsPrivate(mname) {
					privMethods = putMethod(privMethods, m)
				} else {
					methods = putMethod(methods, m)
				}

				if mname == initializerName {
					scanInitializer(fn, source, attrs, privAttrs)
				}
			}
		}
	}

	return ClassRecord{
		Name:              name,
		Attributes:        sortedNames(attrs),
		PrivateAttributes: sortedNames(privAttrs),
		Methods:           methods,
		PrivateMethods:    privMethods,
		Module:            module,
		Package:           pkg,
	}, true
}

// collectBodyAssignments records bare-name targets of class-body assignments,
// both plain and annotated. Chained assignments (a = b = 0) nest on the right,
// so the loop follows the right side while it stays an assignment.
func collectBodyAssignments(stmt *sitter.Node, source []byte, attrs, privAttrs map[string]struct{}) {
	for j := 0; j < int(stmt.NamedChildCount()); j++ {
		expr := stmt.NamedChild(uint(j))
		for expr != nil && expr.Kind() == "assignment" {
			if left := expr.ChildByFieldName("left"); left != nil && left.Kind() == "identifier" {
				addAttribute(parser.NodeText(left, source), attrs, privAttrs)
			}
			expr = expr.ChildByFieldName("right")
		}
	}
}

// scanInitializer walks the whole initializer body (nested statements
// included) and records names assigned through the receiver, e.g. self.count.
func scanInitializer(fn *sitter.Node, source []byte, attrs, privAttrs map[string]struct{}) {
	parser.Walk(fn.ChildByFieldName("body"), func(n *sitter.Node) bool {
		if n.Kind() != "assignment" {
			return true
		}
		if n.ChildByFieldName("type") != nil {
			return true
		}
		left := n.ChildByFieldName("left")
		if left == nil || left.Kind() != "attribute" {
			return true
		}
		obj := left.ChildByFieldName("object")
		if obj == nil || obj.Kind() != "identifier" || parser.NodeText(obj, source) != "self" {
			return true
		}
		addAttribute(parser.NodeText(left.ChildByFieldName("attribute"), source), attrs, privAttrs)
		return true
	})
}

// addAttribute classifies one attribute name by visibility. The two sets stay
// disjoint because classification depends on the name alone.
func addAttribute(name string, attrs, privAttrs map[string]struct{}) {
	if name == "" {
		return
	}
	if IsPrivate(name) {
		privAttrs[name] = struct{}{}
	} else {
		attrs[name] = struct{}{}
	}
}

// putMethod appends a method, replacing an earlier one of the same name.
func putMethod(list []Method, m Method) []Method {
	for i := range list {
		if list[i].Name == m.Name {
			list[i] = m
			return list
		}
	}
	return append(list, m)
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
