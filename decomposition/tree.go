// SPDX-License-Identifier: MIT

package decomposition

import (
	"fmt"

	"github.com/katalvlaran/boolwidth/fixedset"
	"github.com/katalvlaran/boolwidth/graph"
)

const none = -1

// Tree is a binary decomposition tree over the vertices of a graph.
// The zero value is not usable; construct with NewTree.
type Tree struct {
	g      *graph.Graph
	nodes  []fixedset.FixedSet
	index  map[string]int
	parent []int
	left   []int
	right  []int
}

// NewTree returns an empty tree over g.
func NewTree(g *graph.Graph) *Tree {
	return &Tree{g: g, index: make(map[string]int)}
}

// Graph returns the graph the tree decomposes.
func (t *Tree) Graph() *graph.Graph { return t.g }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the first inserted node. ok is false for an empty tree.
func (t *Tree) Root() (root fixedset.FixedSet, ok bool) {
	if len(t.nodes) == 0 {
		return t.g.EmptySet(), false
	}

	return t.nodes[0], true
}

// Nodes returns the nodes in insertion order.
func (t *Tree) Nodes() []fixedset.FixedSet {
	out := make([]fixedset.FixedSet, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Contains reports whether node is in the tree.
func (t *Tree) Contains(node fixedset.FixedSet) bool {
	_, ok := t.index[node.Key()]

	return ok
}

// Insert adds node using the positional rule: its parent is the most recently
// inserted strict superset that has fewer than two children. The first node
// becomes the root.
func (t *Tree) Insert(node fixedset.FixedSet) error {
	if err := t.checkNew(node); err != nil {
		return err
	}
	if len(t.nodes) == 0 {
		t.push(node, none)

		return nil
	}
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if t.right[i] != none {
			continue
		}
		cand := t.nodes[i]
		if node.IsSubsetOf(cand) && !node.Equal(cand) {
			t.attach(node, i)

			return nil
		}
	}

	return fmt.Errorf("Insert %v: %w", node, ErrParentNotFound)
}

// InsertWithParent adds node as the next free child of parent. On an empty
// tree parent is ignored and node becomes the root.
func (t *Tree) InsertWithParent(node, parent fixedset.FixedSet) error {
	if err := t.checkNew(node); err != nil {
		return err
	}
	if len(t.nodes) == 0 {
		t.push(node, none)

		return nil
	}
	p, ok := t.index[parent.Key()]
	if !ok {
		return fmt.Errorf("InsertWithParent %v: parent %v: %w", node, parent, ErrParentNotFound)
	}
	if t.right[p] != none {
		return fmt.Errorf("InsertWithParent %v: parent %v: %w", node, parent, ErrParentFull)
	}
	t.attach(node, p)

	return nil
}

func (t *Tree) checkNew(node fixedset.FixedSet) error {
	n := t.g.Size()
	if node.Lo() != 0 || node.Hi() != n {
		return fmt.Errorf("%w: range [%d,%d), want [0,%d)", ErrInvalidNode, node.Lo(), node.Hi(), n)
	}
	if node.IsEmpty() {
		return fmt.Errorf("%w: empty node", ErrInvalidNode)
	}
	if !node.IsSubsetOf(t.g.Vertices()) {
		return fmt.Errorf("%w: %v has vertices outside the graph", ErrInvalidNode, node)
	}
	if t.Contains(node) {
		return fmt.Errorf("%w: %v", ErrDuplicateNode, node)
	}

	return nil
}

func (t *Tree) push(node fixedset.FixedSet, parent int) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, node)
	t.index[node.Key()] = i
	t.parent = append(t.parent, parent)
	t.left = append(t.left, none)
	t.right = append(t.right, none)

	return i
}

func (t *Tree) attach(node fixedset.FixedSet, p int) {
	i := t.push(node, p)
	if t.left[p] == none {
		t.left[p] = i
	} else {
		t.right[p] = i
	}
}

// Parent returns the parent of node. ok is false for the root and for
// nodes not in the tree.
func (t *Tree) Parent(node fixedset.FixedSet) (parent fixedset.FixedSet, ok bool) {
	i, found := t.index[node.Key()]
	if !found || t.parent[i] == none {
		return t.g.EmptySet(), false
	}

	return t.nodes[t.parent[i]], true
}

// Children returns the two children of node. ok is false unless both exist.
func (t *Tree) Children(node fixedset.FixedSet) (left, right fixedset.FixedSet, ok bool) {
	i, found := t.index[node.Key()]
	if !found || t.left[i] == none || t.right[i] == none {
		empty := t.g.EmptySet()

		return empty, empty, false
	}

	return t.nodes[t.left[i]], t.nodes[t.right[i]], true
}

// IsLeaf reports whether node is in the tree and has no children.
func (t *Tree) IsLeaf(node fixedset.FixedSet) bool {
	i, found := t.index[node.Key()]

	return found && t.left[i] == none
}

// Leaves returns the leaves in insertion order.
func (t *Tree) Leaves() []fixedset.FixedSet {
	var out []fixedset.FixedSet
	for i, node := range t.nodes {
		if t.left[i] == none {
			out = append(out, node)
		}
	}

	return out
}

// PostOrder returns the nodes with every child before its parent, left
// subtree before right subtree.
// Complexity: O(len).
func (t *Tree) PostOrder() []fixedset.FixedSet {
	if len(t.nodes) == 0 {
		return nil
	}
	out := make([]fixedset.FixedSet, 0, len(t.nodes))
	type frame struct {
		i        int
		expanded bool
	}
	stack := []frame{{i: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.expanded || t.left[top.i] == none {
			out = append(out, t.nodes[top.i])
			continue
		}
		stack = append(stack, frame{i: top.i, expanded: true})
		if r := t.right[top.i]; r != none {
			stack = append(stack, frame{i: r})
		}
		stack = append(stack, frame{i: t.left[top.i]})
	}

	return out
}

// PreOrder returns the nodes with every parent before its children, left
// subtree before right subtree. Replaying it through Insert rebuilds the
// same tree.
func (t *Tree) PreOrder() []fixedset.FixedSet {
	if len(t.nodes) == 0 {
		return nil
	}
	out := make([]fixedset.FixedSet, 0, len(t.nodes))
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, t.nodes[i])
		if r := t.right[i]; r != none {
			stack = append(stack, r)
		}
		if l := t.left[i]; l != none {
			stack = append(stack, l)
		}
	}

	return out
}

// Validate checks the decomposition invariants: the root is the vertex set
// of the graph, every internal node has two disjoint children covering it,
// and every leaf is a singleton.
func (t *Tree) Validate() error {
	root, ok := t.Root()
	if !ok {
		if t.g.Order() == 0 {
			return nil
		}

		return fmt.Errorf("%w: empty tree", ErrNotLaminar)
	}
	if !root.Equal(t.g.Vertices()) {
		return fmt.Errorf("%w: root %v is not the vertex set", ErrNotLaminar, root)
	}
	for i, node := range t.nodes {
		l, r := t.left[i], t.right[i]
		switch {
		case l == none:
			if node.Count() != 1 {
				return fmt.Errorf("%w: leaf %v is not a singleton", ErrNotLaminar, node)
			}
		case r == none:
			return fmt.Errorf("%w: node %v has a single child", ErrNotLaminar, node)
		default:
			a, b := t.nodes[l], t.nodes[r]
			if a.Intersects(b) {
				return fmt.Errorf("%w: children of %v overlap", ErrNotLaminar, node)
			}
			if !a.Union(b).Equal(node) {
				return fmt.Errorf("%w: children of %v do not cover it", ErrNotLaminar, node)
			}
		}
	}
	return nil
}
