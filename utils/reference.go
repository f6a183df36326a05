package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const referenceYearDigits = 4

// ReferenceCode formats a property reference as prefix + year + zero-padded sequence,
// e.g. FL20260007.
func ReferenceCode(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s%04d%04d", prefix, year, sequence)
}

// ReferencePrefix is the part shared by every reference code issued in the given year.
func ReferencePrefix(prefix string, year int) string {
	return fmt.Sprintf("%s%04d", prefix, year)
}

// ReferenceSequenceOffset is the 1-based position where the sequence digits start inside
// a reference code, suitable for SQL substr().
func ReferenceSequenceOffset(prefix string) int {
	return len(prefix) + referenceYearDigits + 1
}

// ParseReferenceSequence extracts the sequence number of a reference code issued with the
// given prefix and year.
func ParseReferenceSequence(code, prefix string, year int) (int, bool) {
	yearPrefix := ReferencePrefix(prefix, year)
	if !strings.HasPrefix(code, yearPrefix) {
		return 0, false
	}
	seq, err := strconv.Atoi(code[len(yearPrefix):])
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}
