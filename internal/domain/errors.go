package domain

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrErroneousSummary    = errors.New("cannot process a summary result with errors")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrUnsupportedSubject  = errors.New("unsupported subject")
	ErrEmptySearchResults  = errors.New("search returned no results")
	ErrInvalidSummaryShape = errors.New("summary does not match schema")
)
