package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderJSON writes the rows as an indented JSON array.
func RenderJSON(w io.Writer, rows []Row) error {
	encoded, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = w.Write(append(encoded, '\n'))
	return err
}

// RenderText writes the rows as an aligned table. Gas columns use
// thousands separators; absent execution data renders as "-".
func RenderText(w io.Writer, rows []Row) error {
	printer := message.NewPrinter(language.English)

	const format = "%-6s %-5s %-30s %-15s %10s %12s %14s %14s %s\n"
	if _, err := fmt.Fprintf(w, format,
		"INDEX", "STEP", "PASS", "STATUS", "TIME", "SIZE", "CREATION GAS", "RUNTIME GAS", "EXECUTION"); err != nil {
		return err
	}

	for _, row := range rows {
		step := row.Step
		if step == "" {
			step = "-"
		}
		pass := row.PassName
		if pass == "" {
			pass = "-"
		}

		size := "-"
		if row.BytecodeSize != nil {
			size = humanize.Comma(int64(*row.BytecodeSize)) + " B"
		}
		creationGas := "-"
		if row.CreationGas != nil {
			creationGas = printer.Sprintf("%d", *row.CreationGas)
		}
		runtimeGas := "-"
		if row.RuntimeGas != nil {
			runtimeGas = printer.Sprintf("%d", *row.RuntimeGas)
		}
		execution := row.ExecutionStatus
		if execution == "" {
			execution = "-"
		}

		if _, err := fmt.Fprintf(w, format,
			fmt.Sprintf("%d", row.Index),
			step,
			pass,
			row.Status,
			fmt.Sprintf("%.3fs", row.CompilationTime),
			size,
			creationGas,
			runtimeGas,
			execution,
		); err != nil {
			return err
		}
	}
	return nil
}
