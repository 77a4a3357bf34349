package consts

import (
	"errors"
)

var (
	ErrNotImplemented = errors.New(`not implemented`)
	ErrNilReceiver    = errors.New(`nil receiver`)
	ErrNilParam       = errors.New(`nil parameter`)
	ErrNilImage       = errors.New(`nil image`)
	ErrInvalidSize    = errors.New(`invalid target size`)
	ErrUnknownBackend = errors.New(`unknown resize backend`)
	ErrUnknownFilter  = errors.New(`unknown resampling filter`)
)

const (
	LibraryName = `imageprocessor`

	BackendDefaultName = `default`
)
