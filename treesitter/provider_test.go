package treesitter

import (
	"context"
	"strings"
	"testing"

	"github.com/dhamidi/javascope/scope"
)

func TestNew(t *testing.T) {
	p, err := New("java")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := p.Language(), "java"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := New("cobol"); err == nil {
		t.Error("expected error for unknown language")
	} else if !strings.Contains(err.Error(), "java") {
		t.Errorf("error should list supported languages, got %v", err)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"Main.java", "java", false},
		{"src/com/example/Main.java", "java", false},
		{"main.rs", "", true},
		{"Makefile", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := ForFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Language() != tt.want {
				t.Errorf("got %q, want %q", p.Language(), tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	got := Supported()
	if len(got) != 1 || got[0] != "java" {
		t.Errorf("got %v, want [java]", got)
	}
}

const fixture = `public class Counter {
    private int count;

    public void add(int n) {
        if (n > 0) {
            count += n;
        }
    }

    public void report() {
        System.out.println(count);
    }
}
`

func TestParse(t *testing.T) {
	p, err := New("java")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tree, err := p.Parse(context.Background(), []byte(fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := tree.Node(tree.Root())
	if got, want := root.Kind, "program"; got != want {
		t.Errorf("root kind: got %q, want %q", got, want)
	}
	if root.StartLine != 1 || root.EndLine != 13 {
		t.Errorf("root span: got %d-%d, want 1-13", root.StartLine, root.EndLine)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children: got %d, want 1", len(root.Children))
	}
	class := tree.Node(root.Children[0])
	if got, want := class.Kind, "class_declaration"; got != want {
		t.Errorf("class kind: got %q, want %q", got, want)
	}
}

func TestParseAndFindScope(t *testing.T) {
	p, err := New("java")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := p.Parse(context.Background(), []byte(fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		line     int
		wantKind string
	}{
		{"statement inside if", 6, "expression_statement"},
		{"print statement", 11, "expression_statement"},
		{"if condition line", 5, "if_statement"},
		{"method signature line", 4, "method_declaration"},
		{"field line", 2, "field_declaration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := scope.Find(tree, tt.line, scope.WithKinds(p.ScopeKinds()...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Kind != tt.wantKind {
				t.Errorf("kind: got %q, want %q", res.Kind, tt.wantKind)
			}
			if !(res.StartLine <= tt.line && tt.line <= res.EndLine) {
				t.Errorf("span %d-%d does not contain line %d", res.StartLine, res.EndLine, tt.line)
			}
		})
	}

	t.Run("single statement spans one line", func(t *testing.T) {
		res, err := scope.Find(tree, 11, scope.WithKinds(p.ScopeKinds()...))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StartLine != 11 || res.EndLine != 11 {
			t.Errorf("span: got %d-%d, want 11-11", res.StartLine, res.EndLine)
		}
		if want := "        System.out.println(count);"; res.Snippet != want {
			t.Errorf("snippet: got %q, want %q", res.Snippet, want)
		}
	})
}
