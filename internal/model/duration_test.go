package model

import (
	"fmt"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{75, "1:15"},
		{596, "9:56"},
		{653, "10:53"},
		{888, "14:48"},
		{3600, "60:00"},
		{3725, "62:05"},
	}

	for _, test := range tests {
		result := FormatDuration(test.seconds)
		if result != test.expected {
			t.Errorf("FormatDuration(%d) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestFormatDuration_MatchesDivMod(t *testing.T) {
	for d := 0; d <= 2*3600; d += 7 {
		expected := fmt.Sprintf("%d:%02d", d/60, d%60)
		if got := FormatDuration(d); got != expected {
			t.Fatalf("FormatDuration(%d) = %s, expected %s", d, got, expected)
		}
	}
}
