package hcs

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree for repeated selection.
type Document struct {
	root *html.Node
}

// ParseHTML reads and parses an HTML document. The parser applies the
// usual HTML5 tree construction rules, so implied elements like head and
// body appear in the resulting tree.
func ParseHTML(htmlReader io.Reader) (*Document, error) {
	rootNode, err := html.Parse(htmlReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: rootNode}, nil
}

// NewDocument wraps an existing tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the document's root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Select evaluates a selector expression over the whole document.
func (d *Document) Select(expr string) (Selection, error) {
	return Select(d.root, expr)
}

// FindNode returns the first node in the document with the given tag
// name, searching breadth-first.
func (d *Document) FindNode(name string) *html.Node {
	scan := []*html.Node{d.root}
	for len(scan) > 0 {
		next := scan[0]
		scan = scan[1:]
		if next.Type == html.ElementNode && next.Data == name {
			return next
		}
		for c := next.FirstChild; c != nil; c = c.NextSibling {
			scan = append(scan, c)
		}
	}
	return nil
}
