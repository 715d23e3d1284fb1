package webui

import (
	"math"
	"strconv"
	"strings"
)

// FormatBRL renders a value as Brazilian currency: "R$ 1.234,56". Two
// decimal places, "." as the thousands separator and "," as the decimal
// separator. Display-only; exported spreadsheet values stay numeric.
func FormatBRL(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return sign + "R$ " + grouped.String() + "," + decPart
}
