package modexp

import "github.com/holiman/uint256"

// RequiredGas prices a call without executing it. It runs the same parser as
// Execute, so malformed input fails here with the same error the execution
// path would report. Hosts that meter gas themselves call this first and
// debit the result before Execute.
func RequiredGas(input []byte) (uint64, error) {
	op, err := parse(input)
	if err != nil {
		return 0, err
	}
	if op.baseLen == 0 && op.modLen == 0 {
		return MinGasCost, nil
	}
	return gasCost(op.baseLen, op.expLen, op.modLen, op.exponent), nil
}

// gasCost implements the EIP-2565 price. exponent must hold exactly expLen
// bytes and every length must already satisfy the MaxOperandSize cap; under
// the cap no intermediate product can overflow uint64.
func gasCost(baseLen, expLen, modLen uint64, exponent []byte) uint64 {
	gas := multiplicationComplexity(baseLen, modLen) * maxUint64(iterationCount(expLen, exponent), 1) / 3
	if gas < MinGasCost {
		return MinGasCost
	}
	return gas
}

// multiplicationComplexity is the square of the eight-byte word count of the
// larger of base and modulus (EIP-2565).
func multiplicationComplexity(baseLen, modLen uint64) uint64 {
	maxLen := baseLen
	if modLen > maxLen {
		maxLen = modLen
	}
	words := (maxLen + 7) / 8
	return words * words
}

// iterationCount estimates the square-and-multiply step count from the
// exponent's magnitude. For exponents up to 32 bytes the whole value counts;
// beyond that only the low 256 bits contribute their bit length, the
// exp & (2^256 - 1) mask, while every byte above them adds a flat eight.
func iterationCount(expLen uint64, exponent []byte) uint64 {
	if expLen <= 32 {
		exp := new(uint256.Int).SetBytes(exponent)
		if exp.IsZero() {
			return 0
		}
		return uint64(exp.BitLen() - 1)
	}
	// The flat term is at least 8, so the trailing -1 cannot underflow
	// even when the masked low bits are all zero.
	low := new(uint256.Int).SetBytes(exponent[len(exponent)-32:])
	return 8*(expLen-32) + uint64(low.BitLen()) - 1
}

// maxUint64 returns the larger of a and b.
func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
