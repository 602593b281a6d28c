// Package scope locates the smallest syntactic construct in a parse tree
// that contains a given source line.
package scope

import (
	"errors"
	"fmt"

	"github.com/dhamidi/javascope/syntax"
)

// ErrInvalidInput reports malformed arguments: a non-positive line number
// or a nil/empty tree.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoScope reports that no node in the tree spans the requested line.
// It is an expected outcome for lines past the end of the parsed source,
// not a failure.
var ErrNoScope = errors.New("no scope found")

// Result describes the located scope: the node's grammar tag, its
// 1-based inclusive line range, and the source text of those lines.
type Result struct {
	Kind      string
	StartLine int
	EndLine   int
	Snippet   string
}

// Option configures a Find call.
type Option func(*options)

type options struct {
	kinds map[string]bool
}

// WithKinds restricts results to nodes tagged with one of the given
// kinds. Find still descends to the deepest node containing the line,
// then answers with the nearest enclosing node whose kind is in the
// table. Without this option every node qualifies.
func WithKinds(kinds ...string) Option {
	return func(o *options) {
		if o.kinds == nil {
			o.kinds = make(map[string]bool, len(kinds))
		}
		for _, k := range kinds {
			o.kinds[k] = true
		}
	}
}

func (o *options) eligible(kind string) bool {
	return o.kinds == nil || o.kinds[kind]
}

// Find returns the deepest node in tree whose line span contains line.
//
// The search descends from the root, at each node moving into the first
// child in document order whose span contains the line. With correctly
// nested, non-overlapping sibling spans at most one child qualifies, so
// the result is the unique deepest covering node; for a malformed tree
// the first covering child in document order wins.
//
// Find is pure: it only reads the tree and may be called concurrently on
// the same tree.
func Find(tree *syntax.Tree, line int, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if line <= 0 {
		return Result{}, fmt.Errorf("%w: line must be a positive integer, got %d", ErrInvalidInput, line)
	}
	if tree == nil || tree.Len() == 0 {
		return Result{}, fmt.Errorf("%w: empty tree", ErrInvalidInput)
	}

	root := tree.Root()
	if !contains(tree.Node(root), line) {
		return Result{}, fmt.Errorf("%w for line %d", ErrNoScope, line)
	}

	path := []syntax.NodeID{root}
	for {
		next := syntax.NoNode
		for _, child := range tree.Node(path[len(path)-1]).Children {
			if contains(tree.Node(child), line) {
				next = child
				break
			}
		}
		if next == syntax.NoNode {
			break
		}
		path = append(path, next)
	}

	for i := len(path) - 1; i >= 0; i-- {
		n := tree.Node(path[i])
		if o.eligible(n.Kind) {
			return Result{
				Kind:      n.Kind,
				StartLine: n.StartLine,
				EndLine:   n.EndLine,
				Snippet:   tree.Snippet(n.StartLine, n.EndLine),
			}, nil
		}
	}
	return Result{}, fmt.Errorf("%w for line %d", ErrNoScope, line)
}

func contains(n syntax.Node, line int) bool {
	return n.StartLine <= line && line <= n.EndLine
}
