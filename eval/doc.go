// Package eval evaluates expr-lang expressions against DON documents.
//
// The flattened document is available as doc, and path functions resolve
// dotted paths such as "a.0.b" against the tree:
//
//	getpath(path)  the flattened value at path, or nil
//	keypath(path)  the keys of the node at path, in order
//	islist(path)   whether the node at path is list shaped
//	getenv(name)   an environment variable
//
// [Expand] evaluates $[expr] references embedded in the leaves of a tree.
// [LoadEnv] reads extra bindings from $DON_EVAL_ENV.
package eval
