package main

import "testing"

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"empty", "", 0},
		{"single line no newline", "class A {}", 1},
		{"single line with newline", "class A {}\n", 1},
		{"three lines", "a\nb\nc\n", 3},
		{"three lines no trailing newline", "a\nb\nc", 3},
		{"blank lines count", "a\n\n\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countLines([]byte(tt.data)); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
