package solc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractArtifacts classifies one raw standard-JSON response.
//
// The order of checks matters:
//  1. exactly one InternalCompilerError mentioning StackTooDeepError is the
//     benign overflow case - no artifacts, no error;
//  2. any diagnostic other than Warning/Info is fatal and all such
//     diagnostics are aggregated into one CompileError;
//  3. otherwise the response must contain exactly one source with exactly
//     one contract, whose bytecode object and optimized IR are returned.
func extractArtifacts(raw []byte) (Result, error) {
	var output standardOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return Result{}, fmt.Errorf("malformed compiler output: %w", err)
	}

	if len(output.Errors) > 0 {
		if len(output.Errors) == 1 &&
			output.Errors[0].Type == "InternalCompilerError" &&
			strings.Contains(output.Errors[0].Message, "StackTooDeepError") {
			// StackTooDeep may happen with an incomplete sequence. Just continue.
			return Result{Status: StatusStackTooDeep}, nil
		}

		var fatal []string
		for _, diagnostic := range output.Errors {
			if diagnostic.Type != "Warning" && diagnostic.Type != "Info" {
				fatal = append(fatal, diagnostic.FormattedMessage)
			}
		}
		if len(fatal) > 0 {
			return Result{}, &CompileError{Messages: fatal}
		}
	}

	contractCount := 0
	var contract contractInfo
	for _, contracts := range output.Contracts {
		for _, info := range contracts {
			contract = info
			contractCount++
		}
	}
	if len(output.Contracts) != 1 || contractCount != 1 {
		return Result{}, &AmbiguousOutputError{Sources: len(output.Contracts), Contracts: contractCount}
	}

	return Result{
		Status:       StatusSuccess,
		Bytecode:     contract.EVM.Bytecode.Object,
		IR:           contract.IROptimized,
		HasArtifacts: true,
	}, nil
}
