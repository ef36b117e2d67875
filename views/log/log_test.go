package log

import "testing"

func TestPanelHeight(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{10, 3},
		{24, 8},
		{30, 10},
		{60, 15},
		{200, 15},
	}
	for _, tt := range tests {
		if got := PanelHeight(tt.height); got != tt.want {
			t.Errorf("PanelHeight(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}
