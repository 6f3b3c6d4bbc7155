package puzzle

import "errors"

var (
	// ErrFileNotFound is returned when a puzzle input cannot be read.
	ErrFileNotFound = errors.New("file not found")
	// ErrParse is returned when a puzzle input does not match the
	// expected format.
	ErrParse = errors.New("parse error")
	// ErrSolve is returned when a well-formed input produces no answer.
	ErrSolve = errors.New("solve error")
	// ErrSampleMismatch is returned by the runner when a puzzle gives the
	// wrong answer for its sample input.
	ErrSampleMismatch = errors.New("sample mismatch")
)
