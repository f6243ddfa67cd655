package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

type formatOpts struct {
	color   bool
	context int
}

type FormatOption func(*formatOpts)

// FormatColor colors inserted lines green and deleted lines red.
func FormatColor(v bool) FormatOption {
	return func(o *formatOpts) { o.color = v }
}

// FormatContext limits unchanged lines to n around each change. n < 0
// keeps all of them.
func FormatContext(n int) FormatOption {
	return func(o *formatOpts) { o.context = n }
}

// Format writes lines prefixed by their Op. Runs of unchanged lines
// beyond the context are written as "...".
func Format(w io.Writer, lines []Line, opts ...FormatOption) error {
	fo := &formatOpts{context: -1}
	for _, f := range opts {
		f(fo)
	}
	b := &strings.Builder{}
	elided := false
	for i, ln := range lines {
		if !fo.show(lines, i) {
			if !elided {
				b.WriteString("...\n")
				elided = true
			}
			continue
		}
		elided = false
		text := ln.Op.String() + " " + ln.Text
		if fo.color {
			switch ln.Op {
			case Insert:
				text = color.GreenString("%s", text)
			case Delete:
				text = color.RedString("%s", text)
			}
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (fo *formatOpts) show(lines []Line, i int) bool {
	if fo.context < 0 || lines[i].Op != Equal {
		return true
	}
	for j := max(0, i-fo.context); j <= min(len(lines)-1, i+fo.context); j++ {
		if lines[j].Op != Equal {
			return true
		}
	}
	return false
}
