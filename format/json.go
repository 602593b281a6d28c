package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javascope/scope"
)

type JSONEncoder struct {
	w   io.Writer
	res *scope.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(res *scope.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type jsonResult struct {
	Kind      string `json:"kind"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Snippet   string `json:"snippet"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonResult{
		Kind:      e.res.Kind,
		StartLine: e.res.StartLine,
		EndLine:   e.res.EndLine,
		Snippet:   e.res.Snippet,
	}
	return json.MarshalIndent(data, "", "  ")
}
