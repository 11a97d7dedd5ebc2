package modexp

import "errors"

// Failure kinds reported by Execute and RequiredGas. Every failure is
// terminal for the call; no partial output accompanies any of them.
var (
	ErrInputTooShort          = errors.New("modexp: input must contain at least 96 bytes")
	ErrBaseLengthTooLarge     = errors.New("modexp: unreasonably large base length")
	ErrExponentLengthTooLarge = errors.New("modexp: unreasonably large exponent length")
	ErrModulusLengthTooLarge  = errors.New("modexp: unreasonably large modulus length")
	ErrInsufficientInput      = errors.New("modexp: insufficient input for declared lengths")
	ErrMissingGasLimit        = errors.New("modexp: gas limit not supplied")
	ErrOutOfGas               = errors.New("modexp: out of gas")
	ErrUnexpectedOutputSize   = errors.New("modexp: result exceeds modulus length")
)
