package hcs

import (
	"sort"

	"golang.org/x/net/html"
)

// Selection is an ordered, duplicate-free set of nodes produced by
// evaluating a selector expression. For a non-blank expression, nodes
// sharing a tree are kept in document order; a blank expression keeps the
// order of the start set.
type Selection struct {
	nodes []*html.Node
}

// Select evaluates a selector expression against every node of the tree
// rooted at root. An empty expression selects the whole tree.
func Select(root *html.Node, expr string) (Selection, error) {
	return SelectFrom(flattenTree(root), expr)
}

// SelectFrom evaluates a selector expression using nodes as the starting
// set. The start nodes and their descendants are candidates; descendants
// of a matching node are not searched further. An empty expression returns
// the start set in its given order with duplicates removed.
func SelectFrom(nodes []*html.Node, expr string) (Selection, error) {
	group, err := ParseSelectorGroup(expr)
	if err != nil {
		return Selection{}, err
	}
	if len(group) == 0 {
		return newSelection(nodes), nil
	}
	var out []*html.Node
	seen := make(map[*html.Node]struct{})
	for _, m := range group {
		evaluate(nodes, m, func(n *html.Node) {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		})
	}
	sortDocumentOrder(out)
	return Selection{nodes: out}, nil
}

// evaluate walks the start set with an explicit stack. A matching node is
// reported and its subtree skipped; a non-matching node has its children
// pushed in its place.
func evaluate(start []*html.Node, m Matcher, found func(*html.Node)) {
	stack := make([]*html.Node, 0, len(start))
	for i := len(start) - 1; i >= 0; i-- {
		stack = append(stack, start[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if m.Match(n) {
			found(n)
			continue
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}

func newSelection(nodes []*html.Node) Selection {
	out := make([]*html.Node, 0, len(nodes))
	seen := make(map[*html.Node]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return Selection{nodes: out}
}

// Select narrows this selection with a further selector expression.
func (s Selection) Select(expr string) (Selection, error) {
	return SelectFrom(s.nodes, expr)
}

// Nodes returns the selected nodes.
func (s Selection) Nodes() []*html.Node {
	return s.nodes
}

func (s Selection) Len() int {
	return len(s.nodes)
}

func (s Selection) Contains(n *html.Node) bool {
	for _, sn := range s.nodes {
		if sn == n {
			return true
		}
	}
	return false
}

// sortDocumentOrder sorts nodes by position in their tree. Nodes from
// unrelated trees keep their relative evaluation order.
func sortDocumentOrder(nodes []*html.Node) {
	type located struct {
		root *html.Node
		path []int
	}
	locs := make(map[*html.Node]located, len(nodes))
	rootOrder := make(map[*html.Node]int)
	for _, n := range nodes {
		root, path := nodePath(n)
		locs[n] = located{root: root, path: path}
		if _, ok := rootOrder[root]; !ok {
			rootOrder[root] = len(rootOrder)
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := locs[nodes[i]], locs[nodes[j]]
		if a.root != b.root {
			return rootOrder[a.root] < rootOrder[b.root]
		}
		for k := 0; k < len(a.path) && k < len(b.path); k++ {
			if a.path[k] != b.path[k] {
				return a.path[k] < b.path[k]
			}
		}
		return len(a.path) < len(b.path)
	})
}

// nodePath returns the root of n's tree and the child indices leading
// from that root down to n.
func nodePath(n *html.Node) (*html.Node, []int) {
	var rev []int
	cur := n
	for cur.Parent != nil {
		idx := 0
		for s := cur.PrevSibling; s != nil; s = s.PrevSibling {
			idx++
		}
		rev = append(rev, idx)
		cur = cur.Parent
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return cur, path
}
