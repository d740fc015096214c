package sss

import "errors"

var (
	// ErrShareCountRange is returned when the share count is below the
	// threshold, above the largest supported field width, or not below the
	// selected prime.
	ErrShareCountRange = errors.New("sss: share count out of supported range")

	// ErrInvalidThreshold is returned when threshold is less than 2.
	ErrInvalidThreshold = errors.New("sss: threshold must be at least 2")

	// ErrSecretTooLarge is returned when a secret chunk does not fit the
	// selected field.
	ErrSecretTooLarge = errors.New("sss: secret chunk exceeds the field size")

	// ErrNoShares is returned when recovery is attempted with no shares.
	ErrNoShares = errors.New("sss: no shares supplied")

	// ErrInsufficientShares is returned when fewer shares are supplied than
	// the threshold they declare.
	ErrInsufficientShares = errors.New("sss: insufficient shares for reconstruction")

	// ErrIncompatibleShares is returned when shares disagree on byte width,
	// threshold or body length.
	ErrIncompatibleShares = errors.New("sss: shares have incompatible parameters")

	// ErrDuplicateShare is returned when two shares carry the same index.
	ErrDuplicateShare = errors.New("sss: duplicate share index detected")

	// ErrMalformedShare is returned when a share string cannot be parsed.
	ErrMalformedShare = errors.New("sss: malformed share")

	// ErrShareMismatch is returned by VerifyShares when a share does not lie
	// on the polynomial defined by its peers.
	ErrShareMismatch = errors.New("sss: share is inconsistent with its peers")

	// ErrPadSymbolInAlphabet is returned when the reserved pad symbol
	// collides with the working alphabet.
	ErrPadSymbolInAlphabet = errors.New("sss: pad symbol collides with the working alphabet")
)
