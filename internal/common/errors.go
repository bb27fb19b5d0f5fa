package common

import (
	"errors"
	"fmt"
)

// ErrBlockNotFound is returned when the provider has no block for the
// requested number, e.g. when it is beyond the chain head.
var ErrBlockNotFound = errors.New("block not found")

func NewNotFoundError(blockNumber uint64) error {
	return fmt.Errorf("block %d: %w", blockNumber, ErrBlockNotFound)
}

// TransportError wraps a failed RPC call: network failure, malformed
// response or an error returned by the node.
type TransportError struct {
	BlockNumber uint64
	Err         error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error fetching block %d: %v", e.BlockNumber, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MappingError is returned when the provider returned a block that lacks a
// field every existing block must carry.
type MappingError struct {
	BlockNumber uint64
	Field       string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("block %d: required field %q is missing from provider response", e.BlockNumber, e.Field)
}

// SinkWriteError is returned when rows could not be durably appended to an
// output stream.
type SinkWriteError struct {
	Stream string
	Err    error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("failed to write %s rows: %v", e.Stream, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}
