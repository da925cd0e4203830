package keylist

import "github.com/pkg/errors"

// ErrIndexOutOfRange is returned by positional operations addressing a
// position outside the valid range of the sequence.
var ErrIndexOutOfRange = errors.New("index out of range")
