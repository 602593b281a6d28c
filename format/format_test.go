package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/javascope/scope"
)

var sample = scope.Result{
	Kind:      "expression_statement",
	StartLine: 11,
	EndLine:   11,
	Snippet:   "        System.out.println(count);",
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)
	if err := enc.Encode(&sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `Scope Type: expression_statement
Start Line: 11
End Line: 11

Code Snippet:
        System.out.println(count);
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf)
	if err := enc.Encode(&sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Kind      string `json:"kind"`
		StartLine int    `json:"start_line"`
		EndLine   int    `json:"end_line"`
		Snippet   string `json:"snippet"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Kind != sample.Kind {
		t.Errorf("kind: got %q, want %q", got.Kind, sample.Kind)
	}
	if got.StartLine != sample.StartLine || got.EndLine != sample.EndLine {
		t.Errorf("span: got %d-%d, want %d-%d", got.StartLine, got.EndLine, sample.StartLine, sample.EndLine)
	}
	if got.Snippet != sample.Snippet {
		t.Errorf("snippet: got %q, want %q", got.Snippet, sample.Snippet)
	}
}
