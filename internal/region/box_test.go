package region

import "testing"

func TestBoxArea(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 5, H: 4}
	if b.Area() != 20 {
		t.Errorf("Area: got %d, want 20", b.Area())
	}
}

func TestBoxAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want float64
	}{
		{"square", Box{W: 10, H: 10}, 1.0},
		{"wide", Box{W: 30, H: 10}, 3.0},
		{"tall", Box{W: 10, H: 40}, 0.25},
		{"zero height", Box{W: 10, H: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.AspectRatio(); got != tt.want {
				t.Errorf("AspectRatio: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           Box
	}{
		{"normal order", 10, 20, 50, 60, Box{X: 10, Y: 20, W: 40, H: 40}},
		{"swapped corners", 50, 60, 10, 20, Box{X: 10, Y: 20, W: 40, H: 40}},
		{"degenerate", 5, 5, 5, 5, Box{X: 5, Y: 5, W: 0, H: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromCorners(tt.x1, tt.y1, tt.x2, tt.y2)
			if got != tt.want {
				t.Errorf("FromCorners: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromPolygon(t *testing.T) {
	corners := []Point{{10, 10}, {50, 10}, {50, 30}, {10, 30}}
	got := FromPolygon(corners)
	want := Box{X: 10, Y: 10, W: 40, H: 20}
	if got != want {
		t.Errorf("FromPolygon: got %+v, want %+v", got, want)
	}
}

func TestFromPolygon_Skewed(t *testing.T) {
	// A tilted quadrilateral still yields its axis-aligned envelope.
	corners := []Point{{20, 5}, {60, 15}, {55, 40}, {15, 30}}
	got := FromPolygon(corners)
	want := Box{X: 15, Y: 5, W: 45, H: 35}
	if got != want {
		t.Errorf("FromPolygon: got %+v, want %+v", got, want)
	}
}

func TestFromPolygon_Empty(t *testing.T) {
	if got := FromPolygon(nil); got != (Box{}) {
		t.Errorf("FromPolygon(nil): got %+v, want zero box", got)
	}
}

func TestUnion(t *testing.T) {
	a := Box{X: 10, Y: 10, W: 50, H: 20}
	b := Box{X: 15, Y: 12, W: 48, H: 18}
	got := Union(a, b)
	want := Box{X: 10, Y: 10, W: 53, H: 20}
	if got != want {
		t.Errorf("Union: got %+v, want %+v", got, want)
	}
}

func TestOverlapArea(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want int
	}{
		{
			"overlapping",
			Box{X: 0, Y: 0, W: 50, H: 50},
			Box{X: 25, Y: 25, W: 50, H: 50},
			625,
		},
		{
			"disjoint",
			Box{X: 0, Y: 0, W: 10, H: 10},
			Box{X: 50, Y: 50, W: 10, H: 10},
			0,
		},
		{
			"touching edges",
			Box{X: 0, Y: 0, W: 50, H: 50},
			Box{X: 50, Y: 0, W: 50, H: 50},
			0,
		},
		{
			"contained",
			Box{X: 0, Y: 0, W: 100, H: 100},
			Box{X: 25, Y: 25, W: 50, H: 50},
			2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlapArea(tt.a, tt.b); got != tt.want {
				t.Errorf("overlapArea: got %d, want %d", got, tt.want)
			}
			// Intersection is symmetric.
			if got := overlapArea(tt.b, tt.a); got != tt.want {
				t.Errorf("overlapArea reversed: got %d, want %d", got, tt.want)
			}
		})
	}
}
