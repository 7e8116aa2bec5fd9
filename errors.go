package sllist

import "errors"

var (
	// ErrInvalidArgument is returned for malformed arguments such as a
	// negative index or a count below one.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when an index or removal span reaches
	// past the end of the chain.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrTypeContract is returned when a dynamically typed value does not
	// satisfy the list node contract.
	ErrTypeContract = errors.New("type contract violation")
)
