package utils

import (
	"strconv"
	"strings"
)

// PadInt formats an integer with the specified total width
func PadInt(num int, width int) string {
	str := strconv.Itoa(num)

	// Calculate required padding
	padding := width - len(str)

	// Add padding if needed
	if padding > 0 {
		str = strings.Repeat("0", padding) + str
	}

	return str
}
