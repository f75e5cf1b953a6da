package solc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Driver invokes the compiler binary once per Compile call, as a blocking
// subprocess. At most one compilation is ever in flight; the caller blocks
// until the compiler exits.
type Driver struct {
	// Binary is the compiler executable, resolved through PATH when not
	// an explicit path.
	Binary string

	// YulFile is the Yul source passed to every compilation, by reference.
	YulFile string
}

// NewDriver creates a driver for one Yul source file.
func NewDriver(binary, yulFile string) *Driver {
	return &Driver{Binary: binary, YulFile: yulFile}
}

// Compile runs the compiler with the given optimizer steps string and
// classifies its response.
//
// CPUTime on the returned result is the user-mode CPU time of the subprocess
// alone, obtained by differencing the cumulative child resource usage of this
// process immediately before and after the call. Wall-clock time is not
// reported; it would include scheduler noise irrelevant to the benchmark.
//
// A nonzero exit or an unparseable response is fatal and returned as an
// error; there are no retries.
func (d *Driver) Compile(ctx context.Context, optimizerSteps string) (Result, error) {
	payload, err := json.Marshal(newStandardInput(d.YulFile, optimizerSteps))
	if err != nil {
		return Result{}, fmt.Errorf("encode compiler input: %w", err)
	}

	cmd := exec.CommandContext(ctx, d.Binary, "--standard-json", "-", "--pretty-json", "--json-indent=4")
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("invoking compiler", "binary", d.Binary, "steps", optimizerSteps)

	before, err := childUserTime()
	if err != nil {
		return Result{}, fmt.Errorf("read child resource usage: %w", err)
	}
	runErr := cmd.Run()
	after, err := childUserTime()
	if err != nil {
		return Result{}, fmt.Errorf("read child resource usage: %w", err)
	}

	if runErr != nil {
		message := strings.TrimSpace(stderr.String())
		if message != "" {
			return Result{}, fmt.Errorf("compiler invocation failed: %w: %s", runErr, message)
		}
		return Result{}, fmt.Errorf("compiler invocation failed: %w", runErr)
	}

	result, err := extractArtifacts(stdout.Bytes())
	if err != nil {
		return Result{}, err
	}
	result.CPUTime = after - before

	slog.Debug("compiler finished",
		"steps", optimizerSteps,
		"status", result.Status,
		"cpu_time", result.CPUTime,
	)
	return result, nil
}
