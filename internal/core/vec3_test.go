package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 0.5)

	if got := a.Add(b); got != V3(5, 1, 3.5) {
		t.Errorf("Add() = %+v", got)
	}
	if got := a.Sub(b); got != V3(-3, 3, 2.5) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale() = %+v", got)
	}
	if got := a.Dot(b); !near(got, 4-2+1.5) {
		t.Errorf("Dot() = %f", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		len  float64
	}{
		{"axis", V3(0, 0, 5), 1},
		{"diagonal", V3(3, 4, 12), 1},
		{"zero", V3(0, 0, 0), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize().Len(); !near(got, tc.len) {
				t.Errorf("Normalize().Len() = %f, expected %f", got, tc.len)
			}
		})
	}

	if got := V3(0, 3, 4).WithLen(2).Len(); !near(got, 2) {
		t.Errorf("WithLen(2).Len() = %f", got)
	}
}

func TestDistanceHelpers(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(3, 0, 4)

	if !near(a.Sub(b).Len(), 5) {
		t.Errorf("Sub().Len() = %f, expected 5", a.Sub(b).Len())
	}
	if !near(DistSq(a, b), 25) {
		t.Errorf("DistSq() = %f, expected 25", DistSq(a, b))
	}
	if !Within(a, b, 5.01) {
		t.Error("Within(5.01) should be true at distance 5")
	}
	if Within(a, b, 5) {
		t.Error("Within(5) should be false at exactly distance 5")
	}
}

func TestForwardYawRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, math.Pi / 2, 2, -2.5} {
		f := Forward(yaw)
		if !near(f.Len(), 1) {
			t.Errorf("Forward(%f) not unit: %f", yaw, f.Len())
		}
		if !near(f.Yaw(), yaw) {
			t.Errorf("Forward(%f).Yaw() = %f", yaw, f.Yaw())
		}
	}

	// Facing pi points down -Z, toward a planet at the origin from +Z.
	f := Forward(math.Pi)
	if !near(f.Z, -1) || !near(f.X, 0) {
		t.Errorf("Forward(pi) = %+v, expected (0,0,-1)", f)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if V3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if V3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}
