package ir

import "strings"

// GetPath looks up a dotted path such as "a.0.b" below n. The empty path
// refers to n itself.
func (n *Node) GetPath(path string) (Value, bool) {
	v := FromNode(n)
	if path == "" {
		return v, true
	}
	for _, key := range strings.Split(path, ".") {
		if v.Node == nil {
			return Value{}, false
		}
		next, ok := v.Node.Get(key)
		if !ok {
			return Value{}, false
		}
		v = next
	}
	return v, true
}
