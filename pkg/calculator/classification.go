package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Classification describes a score band with its presentation keys.
type Classification struct {
	Label string `json:"label"`
	Class string `json:"class"`
	Color string `json:"color"`
}

// ClassifyScore maps a 0-100 score onto the shared readiness bands.
func ClassifyScore(score int) Classification {
	switch {
	case score >= 90:
		return Classification{Label: "Excellent", Class: "excellent", Color: "#2E7D32"}
	case score >= 80:
		return Classification{Label: "Very Good", Class: "very-good", Color: "#388E3C"}
	case score >= 70:
		return Classification{Label: "Good", Class: "good", Color: "#FFA726"}
	case score >= 60:
		return Classification{Label: "Fair", Class: "fair", Color: "#FF9800"}
	case score >= 50:
		return Classification{Label: "Poor", Class: "poor", Color: "#F57C00"}
	default:
		return Classification{Label: "Needs Improvement", Class: "needs-improvement", Color: "#D32F2F"}
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// formatCurrency renders a dollar amount with thousands separators, e.g.
// "$1,234,567".
func formatCurrency(v float64, decimals int) string {
	return "$" + formatNumber(v, decimals)
}

// formatPercentage renders a percentage, e.g. "24.00%".
func formatPercentage(v float64, decimals int) string {
	return formatNumber(v, decimals) + "%"
}

func formatNumber(v float64, decimals int) string {
	formatted := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)

	intPart := formatted
	fracPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart, fracPart = formatted[:idx], formatted[idx:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%s", sign, grouped.String(), fracPart)
}
