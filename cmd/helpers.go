package cmd

import (
	"strconv"
	"strings"
)

// parseSerial converts a 1-based task number to a 0-based index. Anything
// that is not a number maps to -1, which every operation rejects as an
// invalid task number.
func parseSerial(arg string) int {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return -1
	}
	return n - 1
}
