package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCedula(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"digits only", "0102030405", "0102030405"},
		{"dashes stripped", "010-203-0405", "0102030405"},
		{"dots and spaces stripped", "01.02 03 04.05", "0102030405"},
		{"letters stripped", "V0102030405", "0102030405"},
		{"empty input", "", ""},
		{"no digits at all", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeCedula(tt.input))
		})
	}
}
