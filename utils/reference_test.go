package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceCode(t *testing.T) {
	assert.Equal(t, "FL20260001", ReferenceCode("FL", 2026, 1))
	assert.Equal(t, "FL20260042", ReferenceCode("FL", 2026, 42))
	assert.Equal(t, "FL202612345", ReferenceCode("FL", 2026, 12345))
	assert.Equal(t, "ABC20250007", ReferenceCode("ABC", 2025, 7))
}

func TestReferenceSequenceOffset(t *testing.T) {
	code := ReferenceCode("FL", 2026, 9)
	offset := ReferenceSequenceOffset("FL")
	assert.Equal(t, "0009", code[offset-1:])
}

func TestParseReferenceSequence(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		want   int
		wantOK bool
	}{
		{"valid", "FL20260012", 12, true},
		{"above four digits", "FL202610001", 10001, true},
		{"other year", "FL20250012", 0, false},
		{"other prefix", "XX20260012", 0, false},
		{"non numeric tail", "FL2026abcd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseReferenceSequence(tt.code, "FL", 2026)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
