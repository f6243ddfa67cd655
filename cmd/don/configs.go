package main

import (
	"io"
	"os"

	"github.com/signadot/don-format/don/encode"
	"github.com/signadot/don-format/don/format"
	"github.com/signadot/don-format/don/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='encode one entry per line'"`

	MaxDepth int `cli:"name=maxdepth desc='maximum nesting depth, 0 for no limit'"`
	MaxSize  int `cli:"name=maxsize desc='maximum input size in bytes, 0 for no limit'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.MaxDepth(cfg.MaxDepth),
		parse.MaxSize(cfg.MaxSize),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether to color output to w. Unless -color is
// given explicitly, output to a terminal is colored.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	Lines bool `cli:"name=l desc='decode each input line as a document'"`
	View  *cli.Command
}

type FlatConfig struct {
	*MainConfig

	J    bool `cli:"name=j aliases=json desc='output json'"`
	Y    bool `cli:"name=y aliases=yaml desc='output yaml (default)'"`
	Flat *cli.Command
}

func (cfg *FlatConfig) format() format.Format {
	if cfg.J {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

type EncodeConfig struct {
	*MainConfig

	J      bool `cli:"name=j aliases=json desc='input is json'"`
	Y      bool `cli:"name=y aliases=yaml desc='input is yaml (default)'"`
	Encode *cli.Command
}

func (cfg *EncodeConfig) format() format.Format {
	if cfg.J {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=c desc='lines of context around changes, -1 for all'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expr   string `cli:"name=e desc='expression to evaluate'"`
	Expand bool   `cli:"name=x desc='expand $[expr] references in each document'"`

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string (default)'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string (default)'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type LintConfig struct {
	*MainConfig
	Lint *cli.Command
}
