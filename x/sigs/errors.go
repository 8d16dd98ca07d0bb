package sigs

import "github.com/zeroid/zid/errors"

// ErrInvalidSequence is returned when a signature carries a nonce that does
// not match the stored one.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
