package sbt

import "github.com/zeroid/zid/errors"

var (
	ErrDuplicateInitialization = errors.Register(2001, "issuer already initialized")
	ErrTokenNotFound           = errors.Register(2002, "token not found")
	ErrTransferDisabled        = errors.Register(2003, "transfer disabled")
)
