// Package solc drives the Solidity compiler through its standard-JSON
// interface for Yul input, one blocking subprocess per compilation.
package solc

// Status classifies the outcome of one compiler invocation that did not fail
// fatally.
type Status string

const (
	// StatusSuccess means the compiler produced bytecode and optimized IR.
	StatusSuccess Status = "success"

	// StatusStackTooDeep means code generation overflowed the EVM stack.
	// Expected with incomplete step sequences; the run continues without
	// artifacts for that step.
	StatusStackTooDeep Status = "stack-too-deep"
)

// Result is the outcome of one compiler invocation.
//
// Bytecode is the hex-encoded creation bytecode without a 0x prefix. IR is
// the optimized Yul text. Both are meaningful only when HasArtifacts is true;
// a stack-too-deep response carries neither.
type Result struct {
	Status       Status
	Bytecode     string
	IR           string
	HasArtifacts bool

	// CPUTime is the user-mode CPU time consumed by the compiler
	// subprocess itself, in seconds.
	CPUTime float64
}
