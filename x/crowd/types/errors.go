package types

import (
	"cosmossdk.io/errors"
)

// Crowd module sentinel errors
var (
	ErrInvalidArgument     = errors.Register(ModuleName, 2, "invalid argument")
	ErrUnauthorized        = errors.Register(ModuleName, 3, "unauthorized")
	ErrInsufficientBalance = errors.Register(ModuleName, 4, "insufficient balance")
	ErrUnexpectedRequestID = errors.Register(ModuleName, 5, "unexpected compute request id")
	ErrNotFound            = errors.Register(ModuleName, 6, "not found")
	ErrInvalidAddress      = errors.Register(ModuleName, 7, "invalid address")
)
