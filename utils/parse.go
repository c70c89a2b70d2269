package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var reNum = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)

func ParseFloatSafe(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func ParseIntSafe(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

func ExtractFirstFloat(s string) float64 {
	m := reNum.FindStringSubmatch(strings.ReplaceAll(s, ",", "."))
	if len(m) > 1 {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}
	return 0
}

// ExtractPriceRub возвращает цену из строки вида "12 500 ₽ за ночь" -> 12500
func ExtractPriceRub(s string) int {
	clean := strings.ReplaceAll(s, " ", " ")
	clean = strings.ReplaceAll(clean, " ", "")
	nums := reNum.FindAllString(clean, -1)
	if len(nums) == 0 {
		return 0
	}
	first := strings.SplitN(nums[0], ".", 2)[0]
	v, err := strconv.Atoi(first)
	if err != nil {
		return 0
	}
	return v
}

// SplitCSVParam разбирает query-параметр вида "wifi,pool" в список значений
func SplitCSVParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
