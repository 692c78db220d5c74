package dataset

import (
	"strconv"
	"strings"
)

// NormalizeValue converts digit-only text to its numeric value, stripping
// leading zeros: "00045" becomes 45 and "000" becomes 0. Any other value -
// non-numeric text, already-numeric cells, missing cells - is returned
// unchanged. Every input maps to a defined output.
func NormalizeValue(v Value) Value {
	if v.kind != KindText {
		return v
	}
	s := strings.TrimSpace(v.text)
	if s == "" || !isDigits(s) {
		return v
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return Number(0)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return Number(n)
}

// Normalize returns a new dataset with NormalizeValue applied to every cell.
func (d *Dataset) Normalize() *Dataset {
	return d.apply(NormalizeValue)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
