package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	ErrTooDeep  = fmt.Errorf("%w: input too deeply nested", ErrParse)
	ErrTooLarge = fmt.Errorf("%w: input too large", ErrParse)
)
