package don

import (
	"github.com/signadot/don-format/don/gomap"
	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/parse"
)

// Decode reads text and flattens the result to []any, map[string]any and
// string values.
func Decode(text string) any {
	return DecodeNode(text).Flat()
}

// DecodeNode reads text into a tree.
func DecodeNode(text string) *ir.Node {
	n, _ := parse.ParseString(text)
	return n
}

// Encode returns the DON text for v. See gomap.Encode.
func Encode(v any) string {
	return gomap.Encode(v)
}
