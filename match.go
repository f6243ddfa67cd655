package don

import (
	"strconv"

	"github.com/signadot/don-format/don/debug"
	"github.com/signadot/don-format/don/ir"
)

// Match reports whether doc contains match. Leaves match equal leaves. A
// node matches a node holding a matching value under each of its keys;
// list shaped nodes must in addition have the same length.
func Match(doc, match ir.Value) bool {
	if debug.Match() {
		debug.Logf("match %s against %s", encodeValue(doc), encodeValue(match))
	}
	if match.Node == nil {
		return doc.Node == nil && doc.String == match.String
	}
	if doc.Node == nil {
		return false
	}
	if match.Node.IsArray() && match.Node.Len() > 0 {
		if !doc.Node.IsArray() || doc.Node.Len() != match.Node.Len() {
			return false
		}
	}
	for k, mv := range match.Node.All() {
		dv, ok := doc.Node.Get(k)
		if !ok || !Match(dv, mv) {
			return false
		}
	}
	return true
}

// Trim returns the part of doc selected by the keys of match. Lists are
// renumbered after trimming.
func Trim(match, doc *ir.Node) *ir.Node {
	res := ir.New()
	list := doc.IsArray()
	for k, dv := range doc.All() {
		mv, ok := match.Get(k)
		if !ok {
			continue
		}
		if dv.Node != nil && mv.Node != nil {
			dv = ir.FromNode(Trim(mv.Node, dv.Node))
		} else if dv.Node != nil {
			dv = ir.FromNode(dv.Node.Clone())
		}
		if list {
			res.Push(dv)
			continue
		}
		res.Set(k, dv)
	}
	return res
}

func encodeValue(v ir.Value) string {
	if v.Node != nil {
		return v.Node.String()
	}
	return strconv.Quote(v.String)
}
