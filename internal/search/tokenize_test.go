package search

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"cat in the city", []string{"cat", "in", "the", "city"}},
		{"", nil},
		{"single", []string{"single"}},
		{"  leading", []string{"leading"}},
		{"trailing  ", []string{"trailing"}},
		{"a  b   c", []string{"a", "b", "c"}},
		{"   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidToken(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"cat", true},
		{"", true},
		{"cat\tcity", false},
		{"cat\ncity", false},
		{string([]byte{0x1F}), false},
		{string([]byte{0x20}), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidToken(tt.input); got != tt.want {
				t.Errorf("IsValidToken(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
