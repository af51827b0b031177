package response

import (
	"math"
	"strconv"
)

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func yearString(y int) string {
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}
