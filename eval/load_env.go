package eval

import (
	"fmt"
	"os"

	"github.com/signadot/don-format/don/debug"
	"github.com/signadot/don-format/don/parse"
)

const (
	EnvEnv = "DON_EVAL_ENV"
)

// LoadEnv reads bindings from the DON mapping in $DON_EVAL_ENV. It
// returns a nil Env if the variable is unset.
func LoadEnv() (Env, error) {
	return loadEnv(os.Getenv(EnvEnv))
}

func loadEnv(src string) (Env, error) {
	if src == "" {
		return nil, nil
	}
	n, err := parse.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	m, ok := n.Flat().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: env $%s is not a mapping: %s", ErrEval, EnvEnv, n)
	}
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %v", EnvEnv, n)
	}
	return Env(m), nil
}
