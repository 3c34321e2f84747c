package parse

import (
	"errors"

	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrNullPair  = fieldtree.ErrNullPair
	ErrBadFormat = format.ErrBadFormat
)
