// Package libdiff compares DON trees line by line.
//
// Trees are compared through their one entry per line rendering (see
// [Lines]), so a diff reads like a diff of two pretty printed documents.
package libdiff
