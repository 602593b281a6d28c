package syntax

import (
	"strconv"
	"strings"
)

// NodeID addresses a node inside a Tree's arena.
type NodeID int32

// NoNode is the id of the absent node, used as the parent of the root.
const NoNode NodeID = -1

// Node is one node of a parse tree. Kind is the grammar's tag for the
// node (e.g. "class_declaration", "if_statement"). StartLine and EndLine
// are 1-based and inclusive. Children are ids into the owning Tree's
// arena, in document order.
type Node struct {
	Kind      string
	StartLine int
	EndLine   int
	Children  []NodeID
}

// Tree is an immutable parse tree over a source buffer. Nodes live in a
// flat arena and refer to each other by id, so a Tree can be shared by
// reference across concurrent readers.
//
// Descendant line spans are expected to nest within their ancestors'
// spans, and sibling spans not to overlap. The tree does not enforce
// this; it holds whatever the parser produced.
type Tree struct {
	nodes []Node
	lines []string
}

// Root returns the id of the root node, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// LineCount returns the number of lines in the source buffer the tree
// was parsed from. A trailing newline does not start a new line.
func (t *Tree) LineCount() int {
	n := len(t.lines)
	if n > 0 && t.lines[n-1] == "" {
		n--
	}
	return n
}

// Snippet returns the source text from start to end inclusive, sliced by
// whole lines. Lines outside the buffer are clamped.
func (t *Tree) Snippet(start, end int) string {
	if start < 1 {
		start = 1
	}
	if last := t.LineCount(); end > last {
		end = last
	}
	if start > end {
		return ""
	}
	return strings.Join(t.lines[start-1:end], "\n")
}

// Dump returns an indented listing of the tree, one node per line as
// "kind [start-end]".
func (t *Tree) Dump() string {
	var sb strings.Builder
	if root := t.Root(); root != NoNode {
		t.dumpIndent(&sb, root, 0)
	}
	return sb.String()
}

func (t *Tree) dumpIndent(sb *strings.Builder, id NodeID, indent int) {
	n := t.nodes[id]
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind)
	sb.WriteString(" [" + strconv.Itoa(n.StartLine) + "-" + strconv.Itoa(n.EndLine) + "]\n")
	for _, child := range n.Children {
		t.dumpIndent(sb, child, indent+1)
	}
}

// Builder assembles a Tree. Nodes are added in document order, each
// attached to an already-added parent; the first node added becomes the
// root.
type Builder struct {
	tree Tree
}

// NewBuilder returns a Builder for a tree over the given source buffer.
func NewBuilder(source []byte) *Builder {
	return &Builder{
		tree: Tree{lines: strings.Split(string(source), "\n")},
	}
}

// Add appends a node and returns its id. Pass NoNode as the parent for
// the root node.
func (b *Builder) Add(parent NodeID, kind string, startLine, endLine int) NodeID {
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, Node{
		Kind:      kind,
		StartLine: startLine,
		EndLine:   endLine,
	})
	if parent != NoNode {
		p := &b.tree.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Tree returns the assembled tree. The builder must not be used after.
func (b *Builder) Tree() *Tree {
	return &b.tree
}
