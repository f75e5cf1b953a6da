package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/cameel/solc-seqbench/internal/solc"
)

// MaxLoopIterations caps how many passes through a bracketed sub-sequence
// are executed without converging. Together with the finite sequence length
// this guarantees that every run halts.
const MaxLoopIterations = 12

// Compiler performs one compilation of the run's Yul source with the given
// optimizer steps string. Implemented by solc.Driver in production and by
// scripted fakes in tests.
type Compiler interface {
	Compile(ctx context.Context, optimizerSteps string) (solc.Result, error)
}

// Snapshot is the record of one effective step: the artifacts produced by
// compiling the cumulative prefix up to and including that step. Snapshots
// are immutable once emitted and indexed from 0, where index 0 is always the
// unoptimized baseline with an empty prefix.
type Snapshot struct {
	Index  int
	Prefix string

	// Step is the last applied step letter; empty at the baseline.
	Step string

	Status       solc.Status
	Bytecode     string
	IR           string
	HasArtifacts bool
	CPUTime      float64
}

// loopFrame tracks one '[' whose matching ']' has not converged yet.
// iteration counts completed passes through the loop body; resume is the
// scan position just past the '['.
type loopFrame struct {
	savedIR    string
	savedHasIR bool
	iteration  int
	resume     int
}

// Interpreter walks one sequence against one compiler. It holds no state
// across runs; Run may be called again to repeat the same interpretation
// from scratch.
type Interpreter struct {
	sequence string
	compiler Compiler
}

// New creates an interpreter for a sequence that has already passed
// sequence.Validate. The interpreter itself only guards against bracket
// imbalance with internal errors; position-tagged diagnostics are the
// validator's job.
func New(seq string, compiler Compiler) *Interpreter {
	return &Interpreter{sequence: seq, compiler: compiler}
}

// Run interprets the sequence, calling emit once per snapshot in index
// order. An error from emit, the compiler, or the engine itself aborts the
// rest of the scan and is returned; snapshots already emitted are not
// revisited.
//
// The baseline compilation of the empty prefix must succeed outright;
// a stack-too-deep baseline means the input is not usable at all.
func (it *Interpreter) Run(ctx context.Context, emit func(Snapshot) error) error {
	result, err := it.compiler.Compile(ctx, stepsString(""))
	if err != nil {
		return fmt.Errorf("unoptimized compilation failed: %w", err)
	}
	if result.Status != solc.StatusSuccess {
		return &BaselineError{Status: result.Status}
	}

	index := 0
	prefix := ""
	ir, hasIR := result.IR, result.HasArtifacts
	if err := emit(newSnapshot(index, prefix, "", result)); err != nil {
		return err
	}
	index++

	var stack []loopFrame
	position := 0
	for position < len(it.sequence) {
		if err := ctx.Err(); err != nil {
			return err
		}

		step := it.sequence[position]
		switch {
		case unicode.IsSpace(rune(step)):
			position++

		case step == '[':
			stack = append(stack, loopFrame{
				savedIR:    ir,
				savedHasIR: hasIR,
				resume:     position + 1,
			})
			position++

		case step == ']':
			if len(stack) == 0 {
				return fmt.Errorf("internal error: unmatched ']' at position %d reached the interpreter", position)
			}
			frame := &stack[len(stack)-1]
			// This ']' ends one full pass through the loop body.
			frame.iteration++
			switch {
			case frame.iteration >= MaxLoopIterations:
				// Forced cutoff; the loop body ran its full quota
				// without reaching a fixed point.
				slog.Debug("loop cut off",
					"position", position,
					"iterations", frame.iteration,
					"depth", len(stack),
				)
				stack = stack[:len(stack)-1]
				position++

			case frame.savedHasIR == hasIR && frame.savedIR == ir:
				if !hasIR {
					// Two consecutive failures are not a fixed point.
					return &ConvergenceError{Position: position}
				}
				slog.Debug("loop converged",
					"position", position,
					"iterations", frame.iteration,
					"depth", len(stack),
				)
				stack = stack[:len(stack)-1]
				position++

			default:
				frame.savedIR = ir
				frame.savedHasIR = hasIR
				position = frame.resume
			}

		case step == ':':
			// Cleanup boundary marker; consumed without compiling.
			position++

		default:
			// Anything else is a step letter. Unknown letters are the
			// compiler's to reject.
			prefix += string(step)
			position++

			result, err := it.compiler.Compile(ctx, stepsString(prefix))
			if err != nil {
				return err
			}
			ir, hasIR = result.IR, result.HasArtifacts

			snapshot := newSnapshot(index, prefix, string(step), result)
			slog.Debug("step applied",
				"index", snapshot.Index,
				"step", snapshot.Step,
				"status", snapshot.Status,
				"prefix_len", len(prefix),
			)
			if err := emit(snapshot); err != nil {
				return err
			}
			index++
		}
	}

	if len(stack) != 0 {
		return fmt.Errorf("internal error: %d unmatched '[' reached the end of the scan", len(stack))
	}
	return nil
}

// stepsString derives the compiler-facing steps string from a prefix.
// A trailing ':' separates the main steps from an empty cleanup part, unless
// the prefix already carries an explicit marker.
func stepsString(prefix string) string {
	if strings.ContainsRune(prefix, ':') {
		return prefix
	}
	return prefix + ":"
}

func newSnapshot(index int, prefix, step string, result solc.Result) Snapshot {
	return Snapshot{
		Index:        index,
		Prefix:       prefix,
		Step:         step,
		Status:       result.Status,
		Bytecode:     result.Bytecode,
		IR:           result.IR,
		HasArtifacts: result.HasArtifacts,
		CPUTime:      result.CPUTime,
	}
}
