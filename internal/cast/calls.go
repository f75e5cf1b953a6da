// Package cast deploys snapshot bytecode and exercises it through foundry's
// cast CLI against a local EVM node, producing per-snapshot execution
// records for the analysis step.
package cast

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Call is one transaction to send against a deployed contract.
type Call struct {
	// Sig is the function signature, e.g. "increment(uint256)".
	Sig string `yaml:"sig"`

	// Args are the call arguments, passed to cast verbatim.
	Args []string `yaml:"args,omitempty"`

	// Value is the ether amount to attach, e.g. "0.1ether".
	Value string `yaml:"value,omitempty"`
}

// callFile is the on-disk shape of a call-definition file.
type callFile struct {
	Calls []Call `yaml:"calls"`
}

// LoadCalls reads a YAML call-definition file.
//
// Signatures and arguments must not look like command-line options: anything
// starting with '-' is rejected, so a call file cannot smuggle extra flags
// into the cast invocation. Attaching value goes through the dedicated Value
// field instead.
func LoadCalls(path string) ([]Call, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read call definitions: %w", err)
	}

	var file callFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse call definitions: %w", err)
	}
	if len(file.Calls) == 0 {
		return nil, fmt.Errorf("no calls defined in %s", path)
	}

	for i, call := range file.Calls {
		if call.Sig == "" {
			return nil, fmt.Errorf("call %d: missing signature", i)
		}
		if strings.HasPrefix(call.Sig, "-") {
			return nil, fmt.Errorf("call %d: option-like signature %q not allowed", i, call.Sig)
		}
		for _, arg := range call.Args {
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("call %d: option-like argument %q not allowed", i, arg)
			}
		}
		if strings.HasPrefix(call.Value, "-") {
			return nil, fmt.Errorf("call %d: option-like value %q not allowed", i, call.Value)
		}
	}
	return file.Calls, nil
}
