package dragscroll

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

var (
	testFrame  = Size{Width: 500, Height: 500}
	testExtent = Size{Width: 1000, Height: 1000}
)

func TestCalculateTarget_ZeroMovement(t *testing.T) {
	starts := []Vec2{{0, 0}, {42, 42}, {-7.5, 1e6}}
	current := Vec2{X: -123.4, Y: -56.7}
	for _, s := range starts {
		got := CalculateTarget(testFrame, testExtent, current, s, s)
		if got.Offset != current {
			t.Errorf("start %v: Offset = %v, want %v", s, got.Offset, current)
		}
		if got.ScaleFactor != 0 {
			t.Errorf("start %v: ScaleFactor = %v, want 0", s, got.ScaleFactor)
		}
	}
}

func TestCalculateTarget_Quadrants(t *testing.T) {
	tests := []struct {
		name        string
		current     Vec2
		m           Vec2
		wantTopLeft Vec2
		wantN       float64
	}{
		{"down-right hits right edge", Vec2{0, 0}, Vec2{100, 50}, Vec2{500, 250}, 5},
		{"down-right hits bottom edge", Vec2{0, 0}, Vec2{50, 100}, Vec2{250, 500}, 5},
		{"up-right", Vec2{-300, -300}, Vec2{50, -100}, Vec2{450, 0}, 3},
		{"down-left", Vec2{-300, -300}, Vec2{-100, 50}, Vec2{0, 450}, 3},
		{"up-left", Vec2{-300, -300}, Vec2{-50, -100}, Vec2{150, 0}, 3},
		{"rounds to whole pixels", Vec2{0, 0}, Vec2{300, 200}, Vec2{500, 333}, 500.0 / 300.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := Vec2{10, 20}
			got := CalculateTarget(testFrame, testExtent, tt.current, start, start.Add(tt.m))
			if got.TopLeft() != tt.wantTopLeft {
				t.Errorf("TopLeft = %v, want %v", got.TopLeft(), tt.wantTopLeft)
			}
			if !approxEqual(got.ScaleFactor, tt.wantN, epsilon) {
				t.Errorf("ScaleFactor = %v, want %v", got.ScaleFactor, tt.wantN)
			}
		})
	}
}

func TestCalculateTarget_BoundaryClampExample(t *testing.T) {
	got := CalculateTarget(testFrame, testExtent, Vec2{}, Vec2{0, 0}, Vec2{100, 50})
	if got.ScaleFactor != 5 {
		t.Fatalf("ScaleFactor = %v, want 5", got.ScaleFactor)
	}
	if got.TopLeft() != (Vec2{500, 250}) {
		t.Errorf("TopLeft = %v, want (500, 250)", got.TopLeft())
	}
	if got.Offset != (Vec2{-500, -250}) {
		t.Errorf("Offset = %v, want (-500, -250)", got.Offset)
	}
}

func TestCalculateTarget_AxisDegenerate(t *testing.T) {
	tests := []struct {
		name        string
		current     Vec2
		m           Vec2
		wantTopLeft Vec2
		wantN       float64
	}{
		{"right only", Vec2{0, -40}, Vec2{100, 0}, Vec2{500, 40}, 5},
		{"down only", Vec2{-40, 0}, Vec2{0, 100}, Vec2{40, 500}, 5},
		{"up only", Vec2{-40, -200}, Vec2{0, -100}, Vec2{40, 0}, 2},
		{"left only", Vec2{-300, -40}, Vec2{-100, 0}, Vec2{0, 40}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTarget(testFrame, testExtent, tt.current, Vec2{}, tt.m)
			if math.IsInf(got.ScaleFactor, 0) || math.IsNaN(got.ScaleFactor) {
				t.Fatalf("ScaleFactor = %v, want finite", got.ScaleFactor)
			}
			if !approxEqual(got.ScaleFactor, tt.wantN, epsilon) {
				t.Errorf("ScaleFactor = %v, want %v", got.ScaleFactor, tt.wantN)
			}
			if got.TopLeft() != tt.wantTopLeft {
				t.Errorf("TopLeft = %v, want %v", got.TopLeft(), tt.wantTopLeft)
			}
		})
	}
}

func TestCalculateTarget_AtBoundaryDoesNotMove(t *testing.T) {
	current := Vec2{-500, -500}
	got := CalculateTarget(testFrame, testExtent, current, Vec2{}, Vec2{10, 10})
	if got.ScaleFactor != 0 {
		t.Errorf("ScaleFactor = %v, want 0", got.ScaleFactor)
	}
	if got.Offset != current {
		t.Errorf("Offset = %v, want %v", got.Offset, current)
	}
}

func TestCalculateTarget_ContentSmallerThanFrame(t *testing.T) {
	small := Size{Width: 400, Height: 400}
	got := CalculateTarget(testFrame, small, Vec2{}, Vec2{}, Vec2{10, 10})
	if got.ScaleFactor != 0 {
		t.Errorf("ScaleFactor = %v, want 0 (no room to scroll)", got.ScaleFactor)
	}
	if got.Offset != (Vec2{}) {
		t.Errorf("Offset = %v, want (0, 0)", got.Offset)
	}
}

func TestCalculateTarget_NeverPassesBoundary(t *testing.T) {
	moves := []Vec2{
		{1, 1}, {3, 7}, {-3, 7}, {3, -7}, {-3, -7}, {0, 1}, {1, 0}, {0, -1}, {-1, 0},
		{999, 1}, {-1, 999}, {0.3, 0.7},
	}
	currents := []Vec2{{0, 0}, {-250, -250}, {-500, -500}, {-123, -456}}
	for _, c := range currents {
		for _, m := range moves {
			got := CalculateTarget(testFrame, testExtent, c, Vec2{}, m)
			tl := got.TopLeft()
			if tl.X < 0 || tl.X > 500 || tl.Y < 0 || tl.Y > 500 {
				t.Errorf("current %v, m %v: TopLeft %v outside [0,500]x[0,500]", c, m, tl)
			}
			if got.ScaleFactor < 0 {
				t.Errorf("current %v, m %v: ScaleFactor %v < 0", c, m, got.ScaleFactor)
			}
		}
	}
}

func TestClassifyOrder(t *testing.T) {
	tests := []struct {
		m    Vec2
		want string
	}{
		// Every predicate matches the zero vector; the first row wins.
		{Vec2{0, 0}, "down-right"},
		{Vec2{5, 0}, "down-right"},
		{Vec2{0, 5}, "down-right"},
		{Vec2{0, -5}, "up-right"},
		{Vec2{5, -5}, "up-right"},
		{Vec2{-5, 0}, "down-left"},
		{Vec2{-5, 5}, "down-left"},
		{Vec2{-5, -5}, "up-left"},
	}
	for _, tt := range tests {
		if got := classify(tt.m).name; got != tt.want {
			t.Errorf("classify(%v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{2.5, 3}, {2.4, 2}, {-2.5, -2}, {-2.6, -3}, {0, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"east", Vec2{0, 0}, Vec2{1, 0}, 90},
		{"north", Vec2{0, 0}, Vec2{0, -1}, 180},
		{"south", Vec2{0, 0}, Vec2{0, 1}, 0},
		{"west", Vec2{0, 0}, Vec2{-1, 0}, 270},
		{"south-east", Vec2{0, 0}, Vec2{1, 1}, 45},
		{"same point", Vec2{10, 10}, Vec2{10, 10}, 0},
		{"two decimals", Vec2{0, 0}, Vec2{1, -2}, 153.43},
		{"offset origin", Vec2{100, 100}, Vec2{101, 100}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.a, tt.b); !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("Angle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
