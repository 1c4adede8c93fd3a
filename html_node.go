package hcs

import (
	"strings"

	"golang.org/x/net/html"
)

// getAttribute returns the value of the named attribute, or the empty
// string if the node does not carry it. Attribute names compare without
// regard to ASCII case.
func getAttribute(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

func hasAttribute(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return true
		}
	}
	return false
}

// underElement reports whether n is an element whose parent is also an
// element. The document root has no element parent, so structural
// pseudo-classes like :first-child never apply to it.
func underElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Parent != nil && n.Parent.Type == html.ElementNode
}

func prevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func prevTypeSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && strings.EqualFold(s.Data, n.Data) {
			return s
		}
	}
	return nil
}

func nextTypeSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && strings.EqualFold(s.Data, n.Data) {
			return s
		}
	}
	return nil
}

func isWhitespaceText(n *html.Node) bool {
	return n.Type == html.TextNode && strings.Trim(n.Data, " \t\r\n\f") == ""
}

// countable reports whether a sibling occupies a child position. Elements
// and non-blank text nodes count; comments and inter-tag whitespace do not.
func countable(n *html.Node) bool {
	if n.Type == html.ElementNode {
		return true
	}
	return n.Type == html.TextNode && !isWhitespaceText(n)
}

// countablePosition returns the 1-based position of n among its countable
// siblings, from the end when fromEnd is set.
func countablePosition(n *html.Node, fromEnd bool) int {
	pos := 1
	if fromEnd {
		for s := n.NextSibling; s != nil; s = s.NextSibling {
			if countable(s) {
				pos++
			}
		}
		return pos
	}
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if countable(s) {
			pos++
		}
	}
	return pos
}

// typePosition returns the 1-based position of n among sibling elements
// sharing its tag name.
func typePosition(n *html.Node, fromEnd bool) int {
	pos := 1
	if fromEnd {
		for s := nextTypeSibling(n); s != nil; s = nextTypeSibling(s) {
			pos++
		}
		return pos
	}
	for s := prevTypeSibling(n); s != nil; s = prevTypeSibling(s) {
		pos++
	}
	return pos
}

// WalkChildren visits every descendant of root in document order. The
// callback returns false to stop the walk early.
func WalkChildren(root *html.Node, fn func(n *html.Node) bool) (cont bool) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if !fn(c) {
			return false
		}
		if !WalkChildren(c, fn) {
			return false
		}
	}
	return true
}

// flattenTree returns root and all of its descendants in document order.
func flattenTree(root *html.Node) []*html.Node {
	nodes := []*html.Node{root}
	WalkChildren(root, func(n *html.Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
