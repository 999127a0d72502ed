package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestFRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{"overlapping", NewFRect(0, 0, 10, 10), NewFRect(5, 5, 10, 10), true},
		{"adjacent horizontal", NewFRect(0, 0, 10, 10), NewFRect(10, 0, 10, 10), false},
		{"adjacent vertical", NewFRect(0, 0, 10, 10), NewFRect(0, 10, 10, 10), false},
		{"contained", NewFRect(0, 0, 64, 64), NewFRect(16, 16, 8, 8), true},
		{"far away", NewFRect(0, 0, 1, 1), NewFRect(100, 100, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFRectContains(t *testing.T) {
	r := NewFRect(20, 20, 150, 60)

	if !r.Contains(20, 20) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(95.5, 50) {
		t.Error("center should be inside")
	}
	if r.Contains(170, 50) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(19.99, 50) {
		t.Error("point left of rect should be outside")
	}
}

func TestFRectRect(t *testing.T) {
	got := NewFRect(1.5, 2.25, 3, 1).Rect()
	want := NewRect(1, 2, 4, 2)
	if got != want {
		t.Errorf("Rect() = %+v, expected %+v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
