package color_test

import (
	"testing"

	"lnbasic/pkg/color"
)

func TestDisabled(t *testing.T) {
	color.EnableColor(false)

	if color.IsColorEnabled() {
		t.Fatalf("expected color to be disabled")
	}

	tests := []struct {
		got      string
		expected string
	}{
		{color.GrayText("x"), "x"},
		{color.BoldText("LIST"), "LIST"},
		{color.Error("division by zero"), "Error: division by zero"},
	}

	for _, test := range tests {
		if test.got != test.expected {
			t.Errorf("got %q, expected %q", test.got, test.expected)
		}
	}
}
