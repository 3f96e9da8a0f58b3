package worldbank

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable — значение для отсутствующих данных.
const NotAvailable = "N/A"

var enPrinter = message.NewPrinter(language.English)

// FormatPopulation: 331.9 million / 512.3 thousand.
func FormatPopulation(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	if *v >= 1e6 {
		return fmt.Sprintf("%.1f million", *v/1e6)
	}

	return fmt.Sprintf("%.1f thousand", *v/1e3)
}

// FormatGDP: $25.46 trillion / $412.35 billion.
func FormatGDP(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	if *v >= 1e12 {
		return fmt.Sprintf("$%.2f trillion", *v/1e12)
	}

	return fmt.Sprintf("$%.2f billion", *v/1e9)
}

// FormatPerCapita: $76,399.
func FormatPerCapita(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	return enPrinter.Sprintf("$%d", int64(math.Round(*v)))
}

func formatPercent(v float64) string { return fmt.Sprintf("%.1f%%", v) }
