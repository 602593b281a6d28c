package format

import (
	"encoding"

	"github.com/dhamidi/javascope/scope"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(res *scope.Result) error
}
