// Package treesitter turns source text into a syntax.Tree using the
// pre-built tree-sitter grammars bundled with the binding.
package treesitter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/dhamidi/javascope/syntax"
)

// Provider parses source text for one language.
type Provider interface {
	// Language returns the grammar's identifier, e.g. "java".
	Language() string

	// Parse turns source bytes into a syntax tree. The returned tree
	// is self-contained; the parser holds no reference to it.
	Parse(ctx context.Context, src []byte) (*syntax.Tree, error)

	// ScopeKinds returns the grammar tags that represent meaningful
	// lexical scopes (declarations, statements, blocks) for this
	// language, for use with scope.WithKinds.
	ScopeKinds() []string
}

type grammar struct {
	language   *sitter.Language
	extensions []string
	scopeKinds []string
}

var grammars = map[string]grammar{
	"java": {
		language:   java.GetLanguage(),
		extensions: []string{".java"},
		scopeKinds: javaScopeKinds,
	},
}

// javaScopeKinds lists the tree-sitter-java tags treated as scopes:
// compilation unit, type and member declarations, statements, and blocks.
var javaScopeKinds = []string{
	"program",
	"class_declaration",
	"interface_declaration",
	"enum_declaration",
	"record_declaration",
	"annotation_type_declaration",
	"class_body",
	"interface_body",
	"enum_body",
	"field_declaration",
	"method_declaration",
	"constructor_declaration",
	"constructor_body",
	"compact_constructor_declaration",
	"static_initializer",
	"block",
	"local_variable_declaration",
	"expression_statement",
	"if_statement",
	"for_statement",
	"enhanced_for_statement",
	"while_statement",
	"do_statement",
	"switch_expression",
	"switch_block",
	"switch_block_statement_group",
	"try_statement",
	"try_with_resources_statement",
	"catch_clause",
	"finally_clause",
	"synchronized_statement",
	"return_statement",
	"throw_statement",
	"yield_statement",
	"labeled_statement",
	"assert_statement",
	"lambda_expression",
}

// New returns the provider for the given language identifier.
func New(language string) (Provider, error) {
	g, ok := grammars[language]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)", language, strings.Join(Supported(), ", "))
	}
	return &provider{name: language, grammar: g}, nil
}

// ForFile returns the provider for the language detected from the file's
// extension.
func ForFile(path string) (Provider, error) {
	ext := filepath.Ext(path)
	for name, g := range grammars {
		for _, e := range g.extensions {
			if e == ext {
				return &provider{name: name, grammar: g}, nil
			}
		}
	}
	return nil, fmt.Errorf("unsupported file extension %q (supported: %s)", ext, strings.Join(Supported(), ", "))
}

// Supported returns the known language identifiers, sorted.
func Supported() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type provider struct {
	name    string
	grammar grammar
}

func (p *provider) Language() string {
	return p.name
}

func (p *provider) ScopeKinds() []string {
	return p.grammar.scopeKinds
}

func (p *provider) Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.grammar.language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s source: %w", p.name, err)
	}
	defer tree.Close()

	b := syntax.NewBuilder(src)
	convert(b, tree.RootNode(), syntax.NoNode)
	return b.Tree(), nil
}

// convert copies the named nodes of a tree-sitter tree into the arena,
// translating 0-based rows to 1-based lines. A span that ends at column
// 0 of a later row stops on the previous line; tree-sitter puts the root
// node's end there when the source has a trailing newline.
func convert(b *syntax.Builder, n *sitter.Node, parent syntax.NodeID) {
	start := int(n.StartPoint().Row) + 1
	end := int(n.EndPoint().Row) + 1
	if end > start && n.EndPoint().Column == 0 {
		end--
	}
	id := b.Add(parent, n.Type(), start, end)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		convert(b, n.NamedChild(i), id)
	}
}
