// Package mergeop applies JSON merge patches (RFC 7386) to DON trees.
//
// A patch is itself a tree. Its leaves spelled null remove the keys they
// are set under; nodes merge into nodes; anything else replaces. List
// shaped nodes are replaced whole, as JSON arrays are.
package mergeop
