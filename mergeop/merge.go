package mergeop

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/signadot/don-format/don/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/segmentio/encoding/json"
)

var ErrMerge = errors.New("merge error")

// Merge returns doc with patch applied. Keys keep their position in doc;
// keys added by patch follow in patch order.
func Merge(doc, patch *ir.Node) (*ir.Node, error) {
	docJ, err := json.Marshal(toJSON(ir.FromNode(doc), false))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	patchJ, err := json.Marshal(toJSON(ir.FromNode(patch), true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	resJ, err := jsonpatch.MergePatch(docJ, patchJ)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	var res any
	if err := json.Unmarshal(resJ, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	v := fromJSON(res, ir.FromNode(doc), ir.FromNode(patch))
	if v.Node == nil {
		n := ir.New()
		n.Push(v)
		return n, nil
	}
	return v.Node, nil
}

// toJSON is ir.Value.Flat, with null leaves as nil when nulls is set.
func toJSON(v ir.Value, nulls bool) any {
	if v.Node == nil {
		if nulls && v.String == "null" {
			return nil
		}
		return v.String
	}
	n := v.Node
	if n.IsArray() && n.Len() > 0 {
		res := make([]any, n.Len())
		for i := range res {
			c, _ := n.Get(strconv.Itoa(i))
			res[i] = toJSON(c, nulls)
		}
		return res
	}
	res := make(map[string]any, n.Len())
	for k, c := range n.All() {
		res[k] = toJSON(c, nulls)
	}
	return res
}

// fromJSON builds the value of a merge result, ordering object keys by
// doc and then by patch.
func fromJSON(x any, doc, patch ir.Value) ir.Value {
	switch x := x.(type) {
	case nil:
		return ir.FromString("null")
	case string:
		return ir.FromString(x)
	case []any:
		n := ir.New()
		for _, e := range x {
			n.Push(fromJSON(e, ir.Value{}, ir.Value{}))
		}
		return ir.FromNode(n)
	case map[string]any:
		n := ir.New()
		for _, k := range keyOrder(x, doc, patch) {
			dc, _ := child(doc, k)
			pc, _ := child(patch, k)
			n.Set(k, fromJSON(x[k], dc, pc))
		}
		return ir.FromNode(n)
	}
	return ir.FromString(fmt.Sprint(x))
}

func child(v ir.Value, k string) (ir.Value, bool) {
	if v.Node == nil {
		return ir.Value{}, false
	}
	return v.Node.Get(k)
}

func keyOrder(m map[string]any, doc, patch ir.Value) []string {
	res := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, v := range []ir.Value{doc, patch} {
		if v.Node == nil {
			continue
		}
		for _, k := range v.Node.Keys() {
			if _, ok := m[k]; ok && !seen[k] {
				seen[k] = true
				res = append(res, k)
			}
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(res, rest...)
}
