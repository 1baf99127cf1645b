package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestFRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping",
			a:        FRect{X: 0, Y: 0, W: 2, H: 2},
			b:        FRect{X: 1.5, Y: 1.5, W: 2, H: 2},
			expected: true,
		},
		{
			name:     "touching edges do not overlap",
			a:        FRect{X: 0, Y: 0, W: 2, H: 2},
			b:        FRect{X: 2, Y: 0, W: 2, H: 2},
			expected: false,
		},
		{
			name:     "touching corners do not overlap",
			a:        FRect{X: 0, Y: 0, W: 2, H: 2},
			b:        FRect{X: 2, Y: 2, W: 2, H: 2},
			expected: false,
		},
		{
			name:     "fully separate",
			a:        FRect{X: 0, Y: 0, W: 1, H: 1},
			b:        FRect{X: 5, Y: 5, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "tiny overlap",
			a:        FRect{X: 0, Y: 0, W: 2, H: 2},
			b:        FRect{X: 1.999, Y: 1.999, W: 2, H: 2},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Overlap is symmetric
			if tc.b.Overlaps(tc.a) != tc.expected {
				t.Errorf("Overlaps() not symmetric for %s", tc.name)
			}
		})
	}
}

func TestFRectEdges(t *testing.T) {
	r := FRect{X: 1.5, Y: 2.5, W: 6, H: 2}
	if r.Right() != 7.5 {
		t.Errorf("Right() = %v, expected 7.5", r.Right())
	}
	if r.Bottom() != 4.5 {
		t.Errorf("Bottom() = %v, expected 4.5", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.4, 79.6, 0.5},
		{0.1, 0.4, 79.6, 0.4},
		{80.0, 0.4, 79.6, 79.6},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
