package solc

// Standard-JSON wire types. Only the fields this tool reads or writes are
// declared; everything else in the compiler's responses is ignored.

type standardInput struct {
	Language string                 `json:"language"`
	Sources  map[string]sourceInput `json:"sources"`
	Settings settings               `json:"settings"`
}

type sourceInput struct {
	URLs []string `json:"urls"`
}

type settings struct {
	Optimizer       optimizerSettings              `json:"optimizer"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type optimizerSettings struct {
	Enabled bool             `json:"enabled"`
	Details optimizerDetails `json:"details"`
}

type optimizerDetails struct {
	YulDetails yulDetails `json:"yulDetails"`
}

type yulDetails struct {
	OptimizerSteps string `json:"optimizerSteps"`
}

// newStandardInput builds the compilation request for a single Yul source,
// referenced by path so the compiler reads it from disk itself.
func newStandardInput(yulFile, optimizerSteps string) standardInput {
	return standardInput{
		Language: "Yul",
		Sources: map[string]sourceInput{
			yulFile: {URLs: []string{yulFile}},
		},
		Settings: settings{
			Optimizer: optimizerSettings{
				Enabled: true,
				Details: optimizerDetails{
					YulDetails: yulDetails{OptimizerSteps: optimizerSteps},
				},
			},
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"evm.bytecode.object", "irOptimized"}},
			},
		},
	}
}

type standardOutput struct {
	Errors    []Diagnostic                       `json:"errors"`
	Contracts map[string]map[string]contractInfo `json:"contracts"`
}

// Diagnostic is one entry of the compiler's errors array. Type distinguishes
// genuine errors from warnings and informational notes.
type Diagnostic struct {
	Type             string `json:"type"`
	Message          string `json:"message"`
	FormattedMessage string `json:"formattedMessage"`
}

type contractInfo struct {
	EVM         evmInfo `json:"evm"`
	IROptimized string  `json:"irOptimized"`
}

type evmInfo struct {
	Bytecode bytecodeInfo `json:"bytecode"`
}

type bytecodeInfo struct {
	Object string `json:"object"`
}
