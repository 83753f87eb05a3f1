package core

import "fmt"

// Ordinal returns the 1-based position of index, zero-padded to two digits.
func Ordinal(index int) string {
	return fmt.Sprintf("%02d", index+1)
}
