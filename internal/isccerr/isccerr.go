// Package isccerr defines the sentinel error taxonomy surfaced to callers of
// the engine. Every error returned by internal/codec, internal/isccid, and
// internal/generators wraps one of these with fmt.Errorf("...: %w", err) so
// callers can test the failure kind with errors.Is.
package isccerr

import "errors"

var (
	// ErrHeaderMalformed is returned when a binary header cannot be parsed:
	// a continuation nibble is missing or truncated mid-field.
	ErrHeaderMalformed = errors.New("iscc: header malformed")

	// ErrInvalidBase32 is returned when text input is not valid unpadded
	// RFC 4648 base32.
	ErrInvalidBase32 = errors.New("iscc: invalid base32")

	// ErrUnknownMainType is returned when a header's MainType nibble does
	// not correspond to an enumerated MainType.
	ErrUnknownMainType = errors.New("iscc: unknown main type")

	// ErrUnknownSubType is returned when a header's SubType nibble is not
	// valid for the decoded MainType.
	ErrUnknownSubType = errors.New("iscc: unknown sub type")

	// ErrInvalidBitLength is returned when a requested code length is not
	// a multiple of 32 in [32, 256].
	ErrInvalidBitLength = errors.New("iscc: invalid bit length")

	// ErrCompositionInvalid is returned by compose when units are
	// duplicated or the minimum required units are not present.
	ErrCompositionInvalid = errors.New("iscc: invalid composition")

	// ErrInvalidInput is returned when a generator receives input of the
	// wrong type or shape for its algorithm.
	ErrInvalidInput = errors.New("iscc: invalid input")

	// ErrIO wraps a mid-stream read failure from a caller-supplied byte
	// source.
	ErrIO = errors.New("iscc: io error")
)
