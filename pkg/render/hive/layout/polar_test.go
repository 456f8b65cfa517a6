package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestCartesian(t *testing.T) {
	tests := []struct {
		name   string
		r      float64
		theta  float64
		wantX  float64
		wantY  float64
	}{
		{"up", 10, 0, 0, 10},
		{"right", 10, math.Pi / 2, 10, 0},
		{"down", 10, math.Pi, 0, -10},
		{"left", 10, 3 * math.Pi / 2, -10, 0},
		{"diagonal", math.Sqrt2, math.Pi / 4, 1, 1},
		{"origin", 0, 1.234, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Cartesian(tt.r, tt.theta)
			if math.Abs(p.X-tt.wantX) > eps || math.Abs(p.Y-tt.wantY) > eps {
				t.Errorf("Cartesian(%v, %v) = (%v, %v), want (%v, %v)",
					tt.r, tt.theta, p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPolarRoundTrip(t *testing.T) {
	angles := []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, 4 * math.Pi / 3, 11 * math.Pi / 6}
	for _, theta := range angles {
		p := Cartesian(42, theta)
		r, gotTheta := Polar(p)
		if math.Abs(r-42) > eps {
			t.Errorf("radius round-trip at theta=%v: got %v", theta, r)
		}
		if math.Abs(gotTheta-theta) > eps {
			t.Errorf("angle round-trip at theta=%v: got %v", theta, gotTheta)
		}
	}
}

func TestPolarNormalizesAngle(t *testing.T) {
	// A point in the negative-x half plane maps to [π, 2π), never negative.
	_, theta := Polar(Point{X: -1, Y: 0})
	if theta < 0 || theta >= 2*math.Pi {
		t.Errorf("Polar angle %v outside [0, 2π)", theta)
	}
	if math.Abs(theta-3*math.Pi/2) > eps {
		t.Errorf("Polar(-1, 0) angle = %v, want 3π/2", theta)
	}
}
