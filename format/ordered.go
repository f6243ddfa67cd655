package format

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/don-format/don/gomap"
	"github.com/signadot/don-format/don/ir"
	"github.com/signadot/don-format/don/parse"
)

// ToOrdered is ir.Node.Flat with mappings as yaml.MapSlice in entry
// order.
func ToOrdered(n *ir.Node) any {
	if n.IsArray() {
		res := make([]any, n.Len())
		for i := range res {
			v, ok := n.Get(strconv.Itoa(i))
			if !ok {
				res[i] = ""
				continue
			}
			res[i] = orderedValue(v)
		}
		return res
	}
	res := make(yaml.MapSlice, 0, n.Len())
	for k, v := range n.All() {
		res = append(res, yaml.MapItem{Key: k, Value: orderedValue(v)})
	}
	return res
}

func orderedValue(v ir.Value) any {
	if v.Node != nil {
		return ToOrdered(v.Node)
	}
	return v.String
}

// Marshal writes n in format f.
func Marshal(n *ir.Node, f Format) ([]byte, error) {
	switch f {
	case DONFormat:
		return []byte(n.String() + "\n"), nil
	case JSONFormat:
		return yaml.MarshalWithOptions(ToOrdered(n), yaml.JSON())
	case YAMLFormat:
		return yaml.MarshalWithOptions(ToOrdered(n), yaml.Indent(2), yaml.IndentSequence(true))
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Unmarshal reads d in format f. YAML and JSON documents are converted
// the way gomap encodes Go values, keeping mapping order. A scalar
// document reads as a one element list.
func Unmarshal(d []byte, f Format, opts ...parse.ParseOption) (*ir.Node, error) {
	switch f {
	case DONFormat:
		return parse.Parse(d, opts...)
	case JSONFormat, YAMLFormat:
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshal, err)
	}
	v = fromYAML(v)
	if n, ok := gomap.ToNode(v); ok {
		return n, nil
	}
	return parse.ParseString(gomap.Encode(v))
}

// fromYAML replaces the mappings of a decoded document with
// gomap.Ordered values.
func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(gomap.Ordered, len(x))
		for i, item := range x {
			res[i] = gomap.Entry{Key: keyString(item.Key), Value: fromYAML(item.Value)}
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = fromYAML(e)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = fromYAML(e)
		}
		return res
	}
	return v
}

func keyString(k any) string {
	if k == nil {
		return "null"
	}
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
