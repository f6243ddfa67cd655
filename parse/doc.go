// Package parse reads DON text into [ir.Node] trees.
//
// # Usage
//
//	node, err := parse.ParseString(`{name: alice, tags: [a, b]}`)
//
//	// collect tolerance warnings
//	var ws []token.Warning
//	node, err = parse.Parse(data, parse.ParseWarnings(func(w token.Warning) {
//		ws = append(ws, w)
//	}))
//
// The reader is lenient: unterminated quotes, unbalanced brackets, stray
// delimiters and keys without values all read as a best effort tree, and
// never as an error. Parse fails only when a limit set with [MaxDepth] or
// [MaxSize] is exceeded.
//
// Input which is not exactly one container is read as an implicit list of
// its items, so `a` reads as `[a]` and `[a] [b]` as `[[a], [b]]`. Keys
// are only recognized inside containers: at the top level a delimiter
// starting an item is read as part of it, so `x: 1` reads as `[x, ": 1"]`.
//
// # Related Packages
//
//   - github.com/signadot/don-format/don/ir - tree representation
//   - github.com/signadot/don-format/don/token - lexing
//   - github.com/signadot/don-format/don/encode - writing trees
package parse
