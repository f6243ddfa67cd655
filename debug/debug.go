package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/don-format/don/ir"
)

type debug struct {
	Parse  bool
	Lex    bool
	Encode bool
	Match  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DON_DEBUG_PARSE")
	d.Lex = boolEnv("DON_DEBUG_LEX")
	d.Encode = boolEnv("DON_DEBUG_ENCODE")
	d.Match = boolEnv("DON_DEBUG_MATCH")
	d.Eval = boolEnv("DON_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Lex() bool {
	return d.Lex
}
func Encode() bool {
	return d.Encode
}
func Match() bool {
	return d.Match
}
func Eval() bool {
	return d.Eval
}

// Logf writes a line to stderr. Node arguments are written as DON text.
func Logf(format string, args ...any) {
	for i, a := range args {
		if n, ok := a.(*ir.Node); ok && n != nil {
			args[i] = n.String()
		}
	}
	fmt.Fprintf(os.Stderr, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}
