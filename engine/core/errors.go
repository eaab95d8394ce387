package core

import (
	"errors"
)

var (
	// ErrDomain is returned when an input lies outside the domain of an operation
	// (square root of a negative number, polygon with fewer than three sides...).
	ErrDomain = errors.New("argument outside of domain")
	// ErrNoConvergence is returned when an iterative solver hits its iteration cap.
	ErrNoConvergence = errors.New("iteration did not converge")
	// ErrOverflow is returned when an integer result does not fit in 64 bits.
	ErrOverflow = errors.New("result overflows uint64")
	// ErrBufferTooLarge is returned when a vertex buffer would exceed the allowed size.
	ErrBufferTooLarge = errors.New("vertex buffer too large")

	ErrUnknownFunction = errors.New("unknown function")
	ErrArity           = errors.New("wrong number of arguments")

	ErrNoWorkers           = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNegativeChannelSize = errors.New("attempting to create worker pool with a negative channel size")
)
