package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// BalanceResult is the payload printed after any balance-bearing operation
type BalanceResult struct {
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
	Message  string  `json:"message,omitempty"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// PrintBalance outputs the result of a balance-bearing operation
func (o *Output) PrintBalance(r BalanceResult) {
	if o.format == "json" {
		o.printJSON(r)
		return
	}
	if r.Message != "" {
		color.Green(r.Message)
	}
	fmt.Printf("Balance for %s: %s\n", r.Username, color.CyanString("%.2f", r.Balance))
}

// PrintMessage outputs a simple success message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	color.Green(msg)
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(os.Stderr, string(data))
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
