package extract

import (
	"strings"

	"github.com/mvp-joe/structdoc/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ExprText renders a type or decorator expression to its literal source text.
// The second result is false when the expression cannot be rendered (nil node
// or empty text); callers tolerate that by omitting the element.
func ExprText(node *sitter.Node, source []byte) (string, bool) {
	if node == nil {
		return "", false
	}
	text := strings.TrimSpace(parser.NodeText(node, source))
	if text == "" {
		return "", false
	}
	return text, true
}

// signature builds a Signature from a function_definition node. When
// skipReceiver is set, parameters named "self" are left out.
func signature(fn *sitter.Node, source []byte, skipReceiver bool) Signature {
	var sig Signature

	params := fn.ChildByFieldName("parameters")
	if params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(uint(i))

			var name, typ string
			switch p.Kind() {
			case "identifier":
				name = parser.NodeText(p, source)
			case "typed_parameter":
				nameNode := p.NamedChild(0)
				if nameNode == nil || nameNode.Kind() != "identifier" {
					continue
				}
				name = parser.NodeText(nameNode, source)
				typ, _ = ExprText(p.ChildByFieldName("type"), source)
			case "default_parameter":
				nameNode := p.ChildByFieldName("name")
				if nameNode == nil || nameNode.Kind() != "identifier" {
					continue
				}
				name = parser.NodeText(nameNode, source)
			case "typed_default_parameter":
				name = parser.NodeText(p.ChildByFieldName("name"), source)
				typ, _ = ExprText(p.ChildByFieldName("type"), source)
			default:
				// *args, **kwargs and bare separators carry no plain name.
				continue
			}

			if name == "" {
				continue
			}
			if skipReceiver && name == "self" {
				continue
			}
			sig.Params = append(sig.Params, Param{Name: name, Type: typ})
		}
	}

	if ret := fn.ChildByFieldName("return_type"); ret != nil {
		sig.Return, _ = ExprText(ret, source)
	}

	return sig
}
