package domain

import "errors"

var (
	// ErrInvalidInput marks per-ad data that cannot be priced. The ad is
	// skipped, never corrected.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfigurationInvalid marks bidding defaults or overrides that were
	// replaced by a safe value.
	ErrConfigurationInvalid = errors.New("configuration invalid")
	// ErrPersistenceFailure marks a failed write-back of one ad.
	ErrPersistenceFailure = errors.New("persistence failure")
	// ErrReadFailure marks a failed bulk load. It aborts the whole run.
	ErrReadFailure = errors.New("read failure")
	// ErrAdNotFound is returned by catalog writes when the ad was deleted
	// after the run loaded it. The engine reports it as a persistence
	// failure for that ad.
	ErrAdNotFound = errors.New("ad not found")
)
