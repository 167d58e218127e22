package core

import "testing"

func TestColorRGB(t *testing.T) {
	tests := []struct {
		color Color
		want  RGB
	}{
		{ColorBlack, RGB{0, 0, 0}},
		{ColorRed, RGB{0xAA, 0, 0}},
		{ColorLightBlue, RGB{0x55, 0x55, 0xFF}},
		{ColorWhite, RGB{0xFF, 0xFF, 0xFF}},
		{Color(200), RGB{0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		if got := tt.color.RGB(); got != tt.want {
			t.Errorf("%v.RGB() = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestSemanticColors(t *testing.T) {
	if ColorFriendly != ColorLightBlue {
		t.Errorf("friendly should be light blue, got %v", ColorFriendly)
	}
	if ColorHostile != ColorRed {
		t.Errorf("hostile should be red, got %v", ColorHostile)
	}
	if Color(99).String() != "unknown" {
		t.Errorf("unexpected name for out-of-range color: %q", Color(99).String())
	}
}
