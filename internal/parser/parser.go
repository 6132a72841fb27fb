package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Parser parses Python source text into syntax trees.
type Parser struct {
	language *sitter.Language
}

// New creates a parser for Python source files.
func New() *Parser {
	return &Parser{
		language: sitter.NewLanguage(python.Language()),
	}
}

// Tree is a parsed syntax tree together with the source it was parsed from.
// The caller that requested the parse owns the tree and must Close it once
// extraction is done.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Root returns the root node of the tree.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Source returns the raw source text the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.source
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// ParseError reports that a single file could not be parsed. It is recoverable:
// callers skip the file and continue with the rest of the walk.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses source into a syntax tree. A file whose tree contains syntax
// errors yields a ParseError and no tree: partial trees are never returned.
func (p *Parser) Parse(path string, source []byte) (*Tree, error) {
	sp := sitter.NewParser()
	defer sp.Close()

	sp.SetLanguage(p.language)

	tree := sp.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("parser returned no tree")}
	}

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		tree.Close()
		return nil, &ParseError{Path: path, Err: fmt.Errorf("syntax error near line %d", line)}
	}

	return &Tree{tree: tree, source: source}, nil
}

// firstErrorLine finds the 1-based line of the first ERROR or missing node.
func firstErrorLine(root *sitter.Node) int {
	line := int(root.EndPosition().Row) + 1
	found := false
	Walk(root, func(n *sitter.Node) bool {
		if found {
			return false
		}
		if n.IsError() || n.IsMissing() {
			line = int(n.StartPosition().Row) + 1
			found = true
			return false
		}
		return n.HasError()
	})
	return line
}

// NodeText returns the source text covered by a node, or "" for a nil node.
func NodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// Walk recursively visits node and its children. The visitor returns false to
// stop descending below the current node.
func Walk(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(uint(i)), visitor)
	}
}
