package encode

import (
	"strings"

	"github.com/signadot/don-format/don/ir"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ir.Part]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ir.Part]func(string, ...any) string{},
	}
	colors.Map[ir.BracketPart] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[ir.KeyPart] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ir.ValuePart] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ir.SepPart] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color is an ir.Painter.
func (c *Colors) Color(p ir.Part, s string) string {
	return c.Get(p)(s)
}

func (c *Colors) Get(p ir.Part) func(string, ...any) string {
	f := c.Map[p]
	if f == nil {
		return c.Default
	}
	return f
}
