// Package encode writes [ir.Node] trees as DON text.
//
// # Usage
//
//	node, _ := parse.ParseString(`{name: alice, tags: [a, b]}`)
//	err := encode.Encode(node, os.Stdout)
//	// [name => alice, tags => [a, b]]
//
//	// one entry per line, colored for a terminal
//	err = encode.Encode(node, os.Stdout,
//		encode.EncodePretty(true),
//		encode.EncodeColors(encode.NewColors()))
//
// Both forms read back to the same tree.
//
// # Related Packages
//
//   - github.com/signadot/don-format/don/ir - tree representation
//   - github.com/signadot/don-format/don/parse - reading DON text
package encode
