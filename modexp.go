// Package modexp implements the modular-exponentiation precompiled contract
// (EIP-198) with the repriced gas rule of EIP-2565.
//
// The call input packs three unsigned big-endian operands behind a fixed
// 96-byte header:
//
//	offset  0..32   base length     (u256, at most 1024)
//	offset 32..64   exponent length (u256, at most 1024)
//	offset 64..96   modulus length  (u256, at most 1024)
//	offset 96..     base, exponent, modulus bytes, in that order
//
// Bytes beyond the declared operands are ignored; a buffer shorter than the
// declared operands is rejected rather than zero-padded. Execute prices the
// call and checks it against the gas limit before any exponentiation work,
// and returns the result left-padded to exactly the modulus length.
//
// Every call is a pure function of its arguments. The package holds no
// state, so concurrent calls need no synchronization.
package modexp

import "github.com/holiman/uint256"

const (
	// MinGasCost is the floor charged for any call (EIP-2565).
	MinGasCost = 200

	// MaxOperandSize caps each declared operand length in bytes. The cap
	// bounds worst-case work and keeps the gas arithmetic inside uint64;
	// it is a protocol constant, not a tunable.
	MaxOperandSize = 1024

	headerSize = 96
)

// CallContext carries whatever the host dispatch records about the call
// site, typically caller, callee, and transferred value. The contract
// accepts it for signature compatibility and never examines it.
type CallContext any

// operands is the decoded view of a call input. The byte fields alias the
// input buffer and are never written to.
type operands struct {
	baseLen  uint64
	expLen   uint64
	modLen   uint64
	base     []byte
	exponent []byte
	modulus  []byte
}

// parse validates the 96-byte header and slices out the three operands.
// Operand lengths above MaxOperandSize and buffers shorter than the declared
// total are rejected; zero-length operands are legal and decode to zero.
func parse(input []byte) (operands, error) {
	if len(input) < headerSize {
		return operands{}, ErrInputTooShort
	}

	baseLen, err := lengthField(input[0:32], ErrBaseLengthTooLarge)
	if err != nil {
		return operands{}, err
	}
	expLen, err := lengthField(input[32:64], ErrExponentLengthTooLarge)
	if err != nil {
		return operands{}, err
	}
	modLen, err := lengthField(input[64:96], ErrModulusLengthTooLarge)
	if err != nil {
		return operands{}, err
	}

	// Each length is at most 1024, so the sum cannot overflow.
	if uint64(len(input)) < headerSize+baseLen+expLen+modLen {
		return operands{}, ErrInsufficientInput
	}

	expStart := headerSize + baseLen
	modStart := expStart + expLen
	return operands{
		baseLen:  baseLen,
		expLen:   expLen,
		modLen:   modLen,
		base:     input[headerSize:expStart],
		exponent: input[expStart:modStart],
		modulus:  input[modStart : modStart+modLen],
	}, nil
}

// lengthField decodes one 32-byte big-endian header field and enforces the
// operand size cap, reporting tooLarge when the field exceeds it.
func lengthField(field []byte, tooLarge error) (uint64, error) {
	v := new(uint256.Int).SetBytes(field)
	if v.GtUint64(MaxOperandSize) {
		return 0, tooLarge
	}
	return v.Uint64(), nil
}

// format left-pads the minimal big-endian encoding of a result to exactly
// modLen bytes. A result longer than modLen means the exponentiator broke
// its result < modulus contract; that is reported rather than truncated.
func format(result []byte, modLen uint64) ([]byte, error) {
	if uint64(len(result)) > modLen {
		return nil, ErrUnexpectedOutputSize
	}
	if uint64(len(result)) == modLen {
		return result, nil
	}
	padded := make([]byte, modLen)
	copy(padded[modLen-uint64(len(result)):], result)
	return padded, nil
}

// Execute runs the contract: parse the input, price it, check the price
// against the gas limit, exponentiate, and left-pad the result to the
// modulus length. It returns the output bytes and the gas consumed.
//
// A nil gasLimit means the caller supplied no budget; any call that needs
// pricing then fails with ErrMissingGasLimit. The one exception is a
// zero-length base combined with a zero-length modulus, which is priced at
// MinGasCost without reading the exponent or requiring a limit, however
// large the declared exponent length.
func Execute(input []byte, gasLimit *uint64, env CallContext) ([]byte, uint64, error) {
	op, err := parse(input)
	if err != nil {
		return nil, 0, err
	}

	if op.baseLen == 0 && op.modLen == 0 {
		out, err := format(nil, op.modLen)
		if err != nil {
			return nil, 0, err
		}
		return out, MinGasCost, nil
	}

	gas := gasCost(op.baseLen, op.expLen, op.modLen, op.exponent)
	if gasLimit == nil {
		return nil, 0, ErrMissingGasLimit
	}
	if gas > *gasLimit {
		return nil, 0, ErrOutOfGas
	}

	out, err := format(modExp(op.base, op.exponent, op.modulus), op.modLen)
	if err != nil {
		return nil, 0, err
	}
	return out, gas, nil
}
