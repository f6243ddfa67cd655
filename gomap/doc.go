// Package gomap encodes Go values as DON text.
//
// # Usage
//
//	type User struct {
//		Name string
//		Tags []string `don:"tags"`
//	}
//	s := gomap.Encode(User{Name: "Bob", Tags: []string{"a", "b"}})
//	// ["Name" => "Bob", tags => [a, b]]
//
// Strings, numbers, booleans and values implementing
// [encoding.TextMarshaler] encode as a single leaf. Maps, structs, slices
// and arrays encode as nodes: struct fields in declaration order, slice
// elements under their indices and map entries with index like keys
// first, in numeric order, then the remaining keys sorted. [Ordered]
// keeps entries in the order given.
//
// A nil value encodes as null. A composite value which contains itself,
// directly or through a descendant, loses the key leading back to the
// ancestor.
//
// # Related Packages
//
//   - github.com/signadot/don-format/don/ir - tree representation
package gomap
