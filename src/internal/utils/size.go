package utils

import (
	"math"
	"strconv"
)

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// ConvertSize renders a byte count in 1024-based units rounded to two
// decimals, e.g. "146.5 GB". Zero renders as "0B"; negative counts keep
// their sign.
func ConvertSize(bytes int64) string {
	if bytes == 0 {
		return "0B"
	}

	sign := ""
	size := float64(bytes)
	if size < 0 {
		sign = "-"
		size = -size
	}

	i := int(math.Floor(math.Log(size) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	scaled := size / math.Pow(1024, float64(i))
	// Float log can land just below an exact power of 1024.
	if scaled >= 1024 && i < len(sizeUnits)-1 {
		i++
		scaled /= 1024
	}
	rounded := math.Round(scaled*100) / 100

	return sign + strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}
