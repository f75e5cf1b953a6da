package cast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Execution status values for one snapshot's call run.
const (
	StatusSuccess           = "success"
	StatusExecutionReverted = "execution-reverted"
	StatusInvalidFEOpcode   = "invalid-fe-opcode"
)

// Node error signatures cast prints on stderr. Matched verbatim; anything
// else on a nonzero exit is a genuine failure.
const (
	revertedSignature  = `(code: 3, message: execution reverted, data: Some(String("0x")))`
	invalidFESignature = `(code: -32603, message: EVM error InvalidFEOpcode, data: None)`
)

// Receipt is the subset of cast's JSON transaction receipt this tool reads.
type Receipt struct {
	ContractAddress   string `json:"contractAddress"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
}

// GasUsed decodes the receipt's cumulative gas as an integer. The node
// reports it as a 0x-prefixed hex quantity.
func (r Receipt) GasUsed() (int64, error) {
	gas, err := strconv.ParseInt(strings.TrimPrefix(r.CumulativeGasUsed, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cumulativeGasUsed %q: %w", r.CumulativeGasUsed, err)
	}
	return gas, nil
}

// Client sends transactions through the cast binary. One subprocess per
// transaction, strictly sequential.
type Client struct {
	Binary     string
	PrivateKey string
}

// NewClient creates a cast client signing with the given private key.
func NewClient(binary, privateKey string) *Client {
	return &Client{Binary: binary, PrivateKey: privateKey}
}

// Deploy creates a contract from hex bytecode and returns its receipt.
func (c *Client) Deploy(ctx context.Context, bytecode string) (Receipt, error) {
	receipt, revert, err := c.send(ctx, "--create", bytecode)
	if err != nil {
		return Receipt{}, err
	}
	if revert != "" {
		return Receipt{}, fmt.Errorf("contract creation reverted (%s)", revert)
	}
	return receipt, nil
}

// Call sends one transaction to a deployed contract. A revert classified as
// one of the known node error signatures is reported through the second
// return value, not as an error; the caller records it and moves on.
func (c *Client) Call(ctx context.Context, address string, call Call) (Receipt, string, error) {
	args := []string{}
	if call.Value != "" {
		args = append(args, "--value", call.Value)
	}
	args = append(args, address, call.Sig)
	args = append(args, call.Args...)
	return c.send(ctx, args...)
}

func (c *Client) send(ctx context.Context, extra ...string) (Receipt, string, error) {
	args := append([]string{"send", "--json", "--private-key", c.PrivateKey}, extra...)

	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("invoking cast", "binary", c.Binary, "args", len(args))

	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		switch {
		case strings.Contains(message, revertedSignature):
			return Receipt{}, StatusExecutionReverted, nil
		case strings.Contains(message, invalidFESignature):
			return Receipt{}, StatusInvalidFEOpcode, nil
		}
		return Receipt{}, "", fmt.Errorf("cast send failed: %w: %s", err, message)
	}

	var receipt Receipt
	if err := json.Unmarshal(stdout.Bytes(), &receipt); err != nil {
		return Receipt{}, "", fmt.Errorf("malformed cast output: %w", err)
	}
	return receipt, "", nil
}
