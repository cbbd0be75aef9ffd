package trailer

import "errors"

// ErrBadLength is returned by FromBytes when the input is not exactly Size
// bytes long.
var ErrBadLength = errors.New("trailer: input must be exactly 160 bytes")
