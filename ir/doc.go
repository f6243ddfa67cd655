// Package ir provides the tree representation of DON documents.
//
// A [Node] is an ordered map from string keys to values, where a value is
// either a leaf string or another Node. There is no separate list type:
// a Node whose keys are exactly "0", "1", ... "n-1" is list shaped (see
// [Node.IsArray]), and [Node.Push] appends at the first free index.
//
//	n := ir.New()
//	n.Push(ir.FromString("a"))
//	n.SetString("name", "alice")
//	fmt.Println(n) // [a, name => alice]
//
// [Node.String] renders DON text, which reads back to an equal Node, and
// [Node.Flat] converts to plain []any / map[string]any values.
package ir
