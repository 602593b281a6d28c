package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/javascope/scope"
)

// TextEncoder writes a scope result as a plain report: the scope's kind,
// its line range, and the source snippet.
type TextEncoder struct {
	w   io.Writer
	res *scope.Result
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(res *scope.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("Scope Type: " + e.res.Kind + "\n")
	sb.WriteString("Start Line: " + strconv.Itoa(e.res.StartLine) + "\n")
	sb.WriteString("End Line: " + strconv.Itoa(e.res.EndLine) + "\n\n")
	sb.WriteString("Code Snippet:\n")
	sb.WriteString(e.res.Snippet)
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}
