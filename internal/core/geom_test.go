package core

import "testing"

func TestRectFromBounds(t *testing.T) {
	tests := []struct {
		name                     string
		left, top, right, bottom int
		expected                 Rect
	}{
		{"regular", 1, 2, 4, 6, NewRect(1, 2, 3, 4)},
		{"zero size", 3, 3, 3, 3, NewRect(3, 3, 0, 0)},
		{"inverted", 5, 5, 2, 1, NewRect(5, 5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := RectFromBounds(tc.left, tc.top, tc.right, tc.bottom)
			if result != tc.expected {
				t.Errorf("RectFromBounds() = %+v, expected %+v", result, tc.expected)
			}
		})
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
		empty    bool
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3), false},
		{"left overhang", NewRect(-2, 1, 4, 2), NewRect(0, 1, 2, 2), false},
		{"bottom right overhang", NewRect(8, 4, 5, 5), NewRect(8, 4, 2, 1), false},
		{"fully outside", NewRect(20, 20, 2, 2), NewRect(10, 5, 0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.Clip(10, 5)
			if result != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", result, tc.expected)
			}
			if result.Empty() != tc.empty {
				t.Errorf("Clip().Empty() = %v, expected %v", result.Empty(), tc.empty)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionLeft; a <= ActionPause; a++ {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
	if got := ParseAction("Teleport"); got != ActionNone {
		t.Errorf("ParseAction(unknown) = %v, expected None", got)
	}
}
