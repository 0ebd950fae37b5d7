package generatetemplate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	log "github.com/wrike/promabbix/internal/logging"
)

// ProgressPrinter handles progress output during validation. Messages
// go to stderr so stdout stays clean for generated templates. When
// jsonOutput is true, progress messages are suppressed.
type ProgressPrinter struct {
	jsonOutput bool
}

// NewProgressPrinter creates a new progress printer.
func NewProgressPrinter(jsonOutput bool) *ProgressPrinter {
	return &ProgressPrinter{jsonOutput: jsonOutput}
}

// Print prints a progress message without newline (only in human mode).
func (p *ProgressPrinter) Print(msg string) {
	if !p.jsonOutput {
		fmt.Fprint(os.Stderr, msg)
	}
}

// Println prints a progress message with newline (only in human mode).
func (p *ProgressPrinter) Println(msg string) {
	if !p.jsonOutput {
		fmt.Fprintln(os.Stderr, msg)
	}
}

// Printf prints a formatted progress message without newline (only in human mode).
func (p *ProgressPrinter) Printf(format string, args ...interface{}) {
	if !p.jsonOutput {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// OutputJSON prints the validation report as JSON.
func OutputJSON(report *ValidationReport) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Log.Errorf("Failed to marshal JSON: %v", err)
		return
	}
	fmt.Println(string(data))
}

// OutputHuman prints the validation report in human-readable format.
func OutputHuman(report *ValidationReport) {
	fmt.Printf("\n=== Validation results for %s ===\n\n", report.Config)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Check", "Status"})
	for idx, check := range report.Checks {
		statusIcon := "✅"
		if check.Skipped {
			statusIcon = "➖"
		} else if !check.Passed {
			statusIcon = "❌"
		}
		t.AppendRow(table.Row{
			idx + 1,
			check.Name,
			statusIcon,
		})
	}
	t.Render()

	for _, check := range report.Checks {
		if check.Passed || check.Skipped {
			continue
		}
		fmt.Println()
		fmt.Println(text.FgRed.Sprintf("%s failed:", check.Name))
		fmt.Println(check.Message)
	}

	passed, failed, skipped := report.CountResults()
	fmt.Println()
	if report.Success {
		fmt.Println(text.FgGreen.Sprintf("✓ Configuration validation passed (%d passed, %d skipped)", passed, skipped))
	} else {
		fmt.Println(text.FgRed.Sprintf("✗ Configuration validation failed (%d passed, %d failed, %d skipped)", passed, failed, skipped))
	}
}
