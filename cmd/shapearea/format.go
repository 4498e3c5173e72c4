package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// formatUsage prints the one-line usage shown when no arguments are given.
func formatUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s shape_name value\n", program)
}

func formatUnknownShape(w io.Writer) {
	fmt.Fprintln(w, "I do not know that shape")
}

// formatArea prints "Area = " followed by the area to two decimal places.
func formatArea(w io.Writer, area float64) {
	fmt.Fprintf(w, "Area = %s\n", formatFixed2(area))
}

// formatFixed2 renders v with two decimals, spelling non-finite values the
// way C printf does (inf, -inf, nan) rather than Go's +Inf and NaN.
func formatFixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatError prints err as "Error: <msg>" with a red label on terminals.
func formatError(w io.Writer, err error) {
	errorLabel.Fprint(w, "Error:")
	fmt.Fprintf(w, " %s\n", err)
}
