package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

var (
	// Out receives all console output.
	Out io.Writer = os.Stdout
	// In is read by Prompt and Confirm.
	In io.Reader = os.Stdin
)

// DisableColor clears the ANSI color codes, for piped output and tests.
func DisableColor() {
	ColorReset, ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorBold = "", "", "", "", "", ""
}

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// PrintField prints an aligned label/value pair without a status marker.
func PrintField(label, detail string) {
	fmt.Fprintf(Out, "    %-15s %s\n", label, detail)
}

// Prompt asks the user for input with a label.
func Prompt(label string, defaultValue string) string {
	fmt.Fprintf(Out, "%s? ", label)
	if defaultValue != "" {
		fmt.Fprintf(Out, "[%s] ", defaultValue)
	}
	fmt.Fprint(Out, ColorCyan) // User input color

	reader := bufio.NewReader(In)
	input, _ := reader.ReadString('\n')
	fmt.Fprint(Out, ColorReset) // Reset color

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

// Confirm asks a yes/no question; an empty answer counts as no.
func Confirm(label string) bool {
	answer := Prompt(label+" [y/N]", "")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
