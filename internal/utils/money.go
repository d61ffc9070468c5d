package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRand renders an integer amount with thousand separators, e.g. "R 12,500".
func FormatRand(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sR %s", sign, formatThousand(amount))
}

// ParseRandToInt parses "R 1,000" or "1000" into an integer amount.
func ParseRandToInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "r")
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(",", "", ".", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid rand amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
