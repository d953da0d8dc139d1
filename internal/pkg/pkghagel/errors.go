package pkghagel

import "errors"

var (
	// ErrAlphabetTooShort is returned for alphabets with fewer than two symbols.
	ErrAlphabetTooShort = errors.New("alphabet needs at least two symbols")
	// ErrAlphabetDuplicate is returned when a symbol appears more than once.
	ErrAlphabetDuplicate = errors.New("alphabet contains duplicate symbols")
	// ErrAlphabetUnsorted is returned when the symbols of a monotonic alphabet
	// are not in ascending order.
	ErrAlphabetUnsorted = errors.New("alphabet symbols must be in ascending order")
	// ErrAlphabetEncoding is returned for alphabets that are not valid UTF-8.
	ErrAlphabetEncoding = errors.New("alphabet is not valid utf-8")

	ErrInvalidResolution    = errors.New("resolution must be a positive finite number of seconds")
	ErrInvalidOverflow      = errors.New("overflow years must be a positive finite number")
	ErrInvalidStart         = errors.New("start instant is required")
	ErrBaseTooSmall         = errors.New("base must be at least 2")
	ErrCombinationsOverflow = errors.New("configuration needs more combinations than fit in 64 bits")
	ErrInvalidDigits        = errors.New("digits must be at least 1")

	// ErrInvalidSymbol is returned when decoding meets a symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("symbol is not part of the alphabet")
	// ErrInvalidID is returned for IDs that cannot have been produced by the generator.
	ErrInvalidID = errors.New("invalid id")
	// ErrValueOverflow is returned when a decoded value does not fit in 64 bits.
	ErrValueOverflow = errors.New("value overflows 64 bits")
)
