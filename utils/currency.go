package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatEUR formats an amount as a euro price string with a thousands
// separator and two decimals.
// Example: 1250.5 -> "€1,250.50"
func FormatEUR(amount float64) string {
	rounded := math.Round(amount*100) / 100
	formatted := fmt.Sprintf("%.2f", rounded)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return "€" + strings.Join(groups, ",") + "." + decimalPart
}
