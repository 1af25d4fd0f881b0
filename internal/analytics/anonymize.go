package analytics

import (
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"
)

// Keys bucketed into coarse dollar ranges before storage.
var rangedKeys = map[string]bool{
	"income":        true,
	"monthlyIncome": true,
	"grossIncome":   true,
	"downPayment":   true,
	"homePrice":     true,
}

// Keys stored rounded to two decimals.
var roundedKeys = map[string]bool{
	"dtiRatio":           true,
	"interestRate":       true,
	"downPaymentPercent": true,
}

// Keys never stored.
var piiKeys = map[string]bool{
	"name":    true,
	"email":   true,
	"phone":   true,
	"address": true,
}

// AnonymizeInput strips a submission of anything identifying before it is
// persisted: dollar amounts become coarse range labels, the credit score
// becomes its FICO band, ratios are rounded, and contact fields are dropped
// entirely.
func AnonymizeInput(input map[string]any) map[string]any {
	anonymized := make(map[string]any, len(input))

	for key, value := range input {
		switch {
		case rangedKeys[key]:
			anonymized[key+"_range"] = dollarRange(toFloat(value))
		case key == "creditScore":
			anonymized["creditScore_range"] = creditScoreRange(int(toFloat(value)))
		case roundedKeys[key]:
			anonymized[key] = math.Round(toFloat(value)*100) / 100
		case piiKeys[key]:
			// dropped
		default:
			anonymized[key] = value
		}
	}

	return anonymized
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		f, _ := strconv.ParseFloat(fmt.Sprint(value), 64)
		return f
	}
}

func dollarRange(value float64) string {
	switch {
	case value < 1000:
		return "0-1k"
	case value < 5000:
		return "1k-5k"
	case value < 10000:
		return "5k-10k"
	case value < 25000:
		return "10k-25k"
	case value < 50000:
		return "25k-50k"
	case value < 100000:
		return "50k-100k"
	case value < 250000:
		return "100k-250k"
	case value < 500000:
		return "250k-500k"
	case value < 1000000:
		return "500k-1M"
	default:
		return "1M+"
	}
}

func creditScoreRange(score int) string {
	switch {
	case score < 580:
		return "Poor (300-579)"
	case score < 670:
		return "Fair (580-669)"
	case score < 740:
		return "Good (670-739)"
	case score < 800:
		return "Very Good (740-799)"
	default:
		return "Excellent (800-850)"
	}
}

// AnonymizeIP zeroes the host portion of an address: the last octet for
// IPv4, the low 80 bits for IPv6. Unparseable input collapses to 0.0.0.0.
func AnonymizeIP(addr string) string {
	// Strip a port or a forwarded-for list if present.
	if idx := strings.IndexByte(addr, ','); idx >= 0 {
		addr = addr[:idx]
	}
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	ip := net.ParseIP(addr)
	if ip == nil {
		return "0.0.0.0"
	}

	if v4 := ip.To4(); v4 != nil {
		masked := v4.Mask(net.CIDRMask(24, 32))
		return masked.String()
	}

	masked := ip.Mask(net.CIDRMask(48, 128))
	return masked.String()
}
