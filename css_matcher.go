package hcs

import (
	"strings"

	"golang.org/x/net/html"
)

// Matcher decides whether a single node satisfies part of a selector.
type Matcher interface {
	Match(n *html.Node) bool
}

// Universal is the * selector. It matches element nodes only.
type Universal struct{}

func (Universal) Match(n *html.Node) bool {
	return n.Type == html.ElementNode
}

// Type matches elements by tag name, ignoring ASCII case.
type Type struct {
	Tag string
}

func (t Type) Match(n *html.Node) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, t.Tag)
}

// Attribute matches nodes that carry the named attribute.
type Attribute struct {
	Key string
}

func (a Attribute) Match(n *html.Node) bool {
	return hasAttribute(n, a.Key)
}

// AttributeValue compares an attribute against a value. Op is one of
// '=', '~', '|', '^', '$' and '*'. A missing attribute reads as the empty
// string. All comparisons ignore ASCII case.
type AttributeValue struct {
	Key   string
	Value string
	Op    byte
}

func (av AttributeValue) Match(n *html.Node) bool {
	str := getAttribute(n, av.Key)
	switch av.Op {
	case '=':
		return strings.EqualFold(str, av.Value)
	case '^':
		return av.Value != "" && startsWithFold(str, av.Value)
	case '$':
		return av.Value != "" && endsWithFold(str, av.Value)
	case '*':
		return av.Value != "" && containsFold(str, av.Value)
	case '|':
		return strings.EqualFold(str, av.Value) || startsWithFold(str, av.Value+"-")
	case '~':
		for _, field := range strings.Fields(str) {
			if strings.EqualFold(field, av.Value) {
				return true
			}
		}
		return false
	}
	return true
}

func startsWithFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func endsWithFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

func containsFold(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}
	return false
}

// Pseudo matches the non-functional pseudo-classes. Unknown names, and
// pseudo-element names recorded with a leading colon, never match.
type Pseudo struct {
	Name string
}

func (p Pseudo) Match(n *html.Node) bool {
	switch p.Name {
	case "root":
		return n.Type == html.ElementNode && n.Parent != nil && n.Parent.Type == html.DocumentNode
	case "first-child":
		return underElement(n) && prevElementSibling(n) == nil
	case "last-child":
		return underElement(n) && nextElementSibling(n) == nil
	case "only-child":
		return underElement(n) && prevElementSibling(n) == nil && nextElementSibling(n) == nil
	case "first-of-type":
		return underElement(n) && prevTypeSibling(n) == nil
	case "last-of-type":
		return underElement(n) && nextTypeSibling(n) == nil
	case "only-of-type":
		return underElement(n) && prevTypeSibling(n) == nil && nextTypeSibling(n) == nil
	case "empty":
		switch n.Type {
		case html.ElementNode:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode || (c.Type == html.TextNode && len(c.Data) > 0) {
					return false
				}
			}
			return true
		case html.TextNode:
			return len(n.Data) == 0
		case html.CommentNode:
			return true
		}
		return false
	}
	return false
}

// NthKind selects which sibling axis an NthPseudo counts along.
type NthKind int

const (
	NthChild NthKind = iota
	NthLastChild
	NthOfType
	NthLastOfType
)

// NthPseudo matches the :nth-child family. The position rule is An+B for
// non-negative n; A of zero demands an exact position.
type NthPseudo struct {
	Kind NthKind
	A    int
	B    int
}

func (np NthPseudo) Match(n *html.Node) bool {
	if !underElement(n) {
		return false
	}
	var pos int
	switch np.Kind {
	case NthChild:
		pos = countablePosition(n, false)
	case NthLastChild:
		pos = countablePosition(n, true)
	case NthOfType:
		pos = typePosition(n, false)
	case NthLastOfType:
		pos = typePosition(n, true)
	}
	if np.A == 0 {
		return pos == np.B
	}
	return pos >= np.B && (pos-np.B)%np.A == 0
}

// Negation is the :not() pseudo-class.
type Negation struct {
	Inner Matcher
}

func (ng Negation) Match(n *html.Node) bool {
	return !ng.Inner.Match(n)
}

// Sequence is a conjunction of simple selectors. An empty sequence matches
// every node.
type Sequence struct {
	Matchers []Matcher
}

func (sq Sequence) Match(n *html.Node) bool {
	for _, m := range sq.Matchers {
		if !m.Match(n) {
			return false
		}
	}
	return true
}

// Union matches when any member of a selector group matches.
type Union struct {
	Matchers []Matcher
}

func (u Union) Match(n *html.Node) bool {
	for _, m := range u.Matchers {
		if m.Match(n) {
			return true
		}
	}
	return false
}

// Combinator relates two selectors. Op is one of ' ' (descendant),
// '>' (child), '+' (adjacent sibling), '~' (general sibling) and
// '*' (grandchild or deeper descendant).
type Combinator struct {
	Left  Matcher
	Right Matcher
	Op    byte
}

func (cb Combinator) Match(n *html.Node) bool {
	if !cb.Right.Match(n) {
		return false
	}
	switch cb.Op {
	case ' ', '*':
		p := n.Parent
		if cb.Op == '*' && p != nil {
			p = p.Parent
		}
		for ; p != nil; p = p.Parent {
			if cb.Left.Match(p) {
				return true
			}
		}
	case '>':
		return n.Parent != nil && cb.Left.Match(n.Parent)
	case '+':
		prev := prevElementSibling(n)
		return prev != nil && cb.Left.Match(prev)
	case '~':
		for prev := prevElementSibling(n); prev != nil; prev = prevElementSibling(prev) {
			if cb.Left.Match(prev) {
				return true
			}
		}
	}
	return false
}
