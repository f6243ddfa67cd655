package parse

import "github.com/signadot/don-format/don/token"

type parseOpts struct {
	maxDepth int
	maxSize  int
	warn     func(token.Warning)
}

type ParseOption func(*parseOpts)

// MaxDepth limits container nesting to n levels. n <= 0 means no limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxSize limits the input to n bytes. n <= 0 means no limit.
func MaxSize(n int) ParseOption {
	return func(o *parseOpts) { o.maxSize = n }
}

// ParseWarnings calls fn for each tolerance rule applied while reading.
// Warnings do not change the result.
func ParseWarnings(fn func(token.Warning)) ParseOption {
	return func(o *parseOpts) { o.warn = fn }
}
