// Package don reads and writes DON, a lenient bracketed notation for
// ordered maps and lists.
//
//	v := don.Decode(`{name: alice, tags: [a, b]}`)
//	// map[string]any{"name": "alice", "tags": []any{"a", "b"}}
//
//	s := don.Encode(map[string]any{"x": 1, "y": []int{2, 3}})
//	// [x => 1, y => [2, 3]]
//
// Decoding never fails: malformed input reads as a best effort tree. Every
// container reads as an [ir.Node], which flattens to a []any when its keys
// are the indices 0 through n-1 and to a map[string]any otherwise. All
// leaves are strings.
//
// The packages below this one expose the pieces: token for lexing, parse
// for reading with limits and warnings, ir for the tree, encode for
// writing and gomap for encoding Go values.
package don
