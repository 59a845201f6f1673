package vector_math

import "testing"

func TestNormZero(t *testing.T) {
	if n := (Vec3{}).Norm(); n != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", n)
	}
	n := Vec3{X: 3, Y: 4}.Norm()
	if !n.ApproxEquals(Vec3{X: 0.6, Y: 0.8}, 1e-6) {
		t.Errorf("unexpected norm %v", n)
	}
}

func TestCross(t *testing.T) {
	z := Vec3{X: 1}.Cross(Vec3{Y: 1})
	if z != (Vec3{Z: 1}) {
		t.Errorf("x cross y should be z, got %v", z)
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := Bounds(nil); ok {
		t.Errorf("empty point list should not have bounds")
	}
	min, max, ok := Bounds([]Vec3{
		{X: 1, Y: -2, Z: 3},
		{X: -1, Y: 5, Z: 0},
		{X: 0.5, Y: 0, Z: 9},
	})
	if !ok {
		t.Fatalf("expected bounds")
	}
	if min != (Vec3{X: -1, Y: -2, Z: 0}) {
		t.Errorf("unexpected min %v", min)
	}
	if max != (Vec3{X: 1, Y: 5, Z: 9}) {
		t.Errorf("unexpected max %v", max)
	}
}
