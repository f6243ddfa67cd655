package ir

import "strconv"

// Flat converts n to plain Go values: a []any when n is list shaped, a
// map[string]any otherwise. Leaves are strings.
func (n *Node) Flat() any {
	if n.IsArray() {
		res := make([]any, n.Len())
		for i := range res {
			v, ok := n.Get(strconv.Itoa(i))
			if !ok {
				res[i] = ""
				continue
			}
			res[i] = v.Flat()
		}
		return res
	}
	res := make(map[string]any, n.Len())
	for k, v := range n.All() {
		if _, ok := res[k]; ok {
			continue
		}
		res[k] = v.Flat()
	}
	return res
}

func (v Value) Flat() any {
	if v.Node != nil {
		return v.Node.Flat()
	}
	return v.String
}
