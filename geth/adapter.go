// Package geth adapts the modexp contract to go-ethereum's precompile
// dispatch.
//
// go-ethereum meters precompile gas in the host: it calls RequiredGas,
// debits the returned amount, and only then calls Run with the raw input,
// so Run executes without an internal budget of its own. Parse failures
// still surface from Run as contract errors, the way go-ethereum's own
// contracts report malformed input.
//
// The contract keeps the strict input convention: buffers shorter than the
// declared operand lengths are rejected, not zero-padded. Hosts that must
// stay byte-compatible with mainnet's zero-padding modexp should keep
// go-ethereum's built-in contract at 0x05 instead of installing this one.
package geth

import (
	"math"

	gethcommon "github.com/ethereum/go-ethereum/common"
	gethvm "github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/params"

	"github.com/evmprecompiles/modexp"
)

// Address is the canonical precompile address for modular exponentiation.
var Address = gethcommon.BytesToAddress([]byte{0x05})

// Contract implements go-ethereum's PrecompiledContract interface (which
// adds Name()) on top of the modexp package.
type Contract struct{}

var _ gethvm.PrecompiledContract = Contract{}

// RequiredGas prices the call for the host's gas ledger. Input that does
// not parse is quoted at the minimum; Run reports the concrete error.
func (Contract) RequiredGas(input []byte) uint64 {
	gas, err := modexp.RequiredGas(input)
	if err != nil {
		return modexp.MinGasCost
	}
	return gas
}

// Run executes the contract. The host has already debited RequiredGas, so
// the call runs against an unbounded internal limit; metering it again here
// would charge twice.
func (Contract) Run(input []byte) ([]byte, error) {
	limit := uint64(math.MaxUint64)
	out, _, err := modexp.Execute(input, &limit, nil)
	return out, err
}

// Name identifies the contract in go-ethereum diagnostics.
func (Contract) Name() string {
	return "modexp"
}

// InstallPrecompile returns go-ethereum's active precompile set for the
// given fork rules with this contract in place of the standard one at the
// modexp address.
func InstallPrecompile(rules params.Rules) gethvm.PrecompiledContracts {
	contracts := gethvm.ActivePrecompiledContracts(rules)
	contracts[Address] = Contract{}
	return contracts
}
