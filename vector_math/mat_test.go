package vector_math

import (
	"testing"
)

// TestUnitMat confirms the identity is neutral for multiplication
func TestUnitMat(t *testing.T) {
	m := NewTranslation(Vec3{X: 1, Y: 2, Z: 3}).Rotate(ToRad(30), Vec3{Y: 1})
	um := NewUnitMat()

	if !m.Mult(um).Equals(m) {
		t.Errorf("m * I should equal m:\n%s", m.Mult(um))
	}
	if !um.Mult(m).Equals(m) {
		t.Errorf("I * m should equal m:\n%s", um.Mult(m))
	}
	if um.ByteSize() != 64 {
		t.Errorf("4x4 matrix should have byte size: %d but was %d", 64, um.ByteSize())
	}
}

func TestRotationX(t *testing.T) {
	mrx := New4x4RotXMat(ToRad(90))
	mrxComplex := NewRotation(ToRad(90), Vec3{X: 1})

	if !mrx.Equals(mrxComplex) {
		t.Errorf(
			"RotX not equal to generic roation around X. RotX: \n%s\n Rotation around x-axis: \n%s",
			mrx, mrxComplex,
		)
	}
}

func TestRotationY(t *testing.T) {
	mry := New4x4RotYMat(ToRad(90))
	mryComplex := NewRotation(ToRad(90), Vec3{Y: 1})

	if !mry.Equals(mryComplex) {
		t.Errorf(
			"RotY not equal to generic roation around Y. RotY: \n%s\n Rotation around y-axis: \n%s",
			mry, mryComplex,
		)
	}
}

func TestRotationZ(t *testing.T) {
	mrz := New4x4RotZMat(ToRad(90))
	mrzComplex := NewRotation(ToRad(90), Vec3{Z: 3})

	if !mrz.Equals(mrzComplex) {
		t.Errorf(
			"RotZ not equal to generic roation around Z. RotZ: \n%s\n Rotation around z-axis: \n%s",
			mrz, mrzComplex,
		)
	}
}

func TestArbitraryRotation(t *testing.T) {
	mr := NewRotation(ToRad(-74), Vec3{X: -0.5, Y: 1, Z: 1})
	mrExample := NewUnitMat()
	mrExample[0][0] = 0.3561221
	mrExample[0][1] = 0.47987163
	mrExample[0][2] = -0.8018106

	mrExample[1][0] = -0.8018106
	mrExample[1][1] = 0.5975763
	mrExample[1][2] = 0.0015183985

	mrExample[2][0] = 0.47987163
	mrExample[2][1] = 0.6423595
	mrExample[2][2] = 0.5975763

	if !mr.Equals(mrExample) {
		t.Errorf(
			"Arbitrary rotation didnt match expectations. expectation: \n%s\n actual: \n%s",
			mrExample, mr,
		)
	}
}

func TestRotationIsOrthonormal(t *testing.T) {
	mr := NewRotation(ToRad(123), Vec3{X: 0.3, Y: -2, Z: 0.7})
	if !mr.Mult(mr.Transpose()).Equals(NewUnitMat()) {
		t.Errorf("R * R^T should be the identity:\n%s", mr.Mult(mr.Transpose()))
	}
}

func TestApply(t *testing.T) {
	m := NewTranslation(Vec3{X: 1, Y: 2, Z: 3}).Scale(Vec3{X: 2, Y: 2, Z: 2})
	p := Apply(Vec3{X: 1, Y: 1, Z: 1}, 1, m)
	if !p.ApproxEquals(Vec3{X: 3, Y: 4, Z: 5}, 1e-6) {
		t.Errorf("point transform: got %v", p)
	}
	d := Apply(Vec3{X: 1, Y: 1, Z: 1}, 0, m)
	if !d.ApproxEquals(Vec3{X: 2, Y: 2, Z: 2}, 1e-6) {
		t.Errorf("direction transform should ignore translation: got %v", d)
	}
}

func TestUnroll(t *testing.T) {
	m := NewTranslation(Vec3{X: 7, Y: 8, Z: 9})
	f := m.Unroll()
	if len(f) != 16 {
		t.Fatalf("unrolled matrix should have 16 entries, got %d", len(f))
	}
	// column-major: the translation lives in the last column -> entries 12, 13, 14
	if f[12] != 7 || f[13] != 8 || f[14] != 9 || f[15] != 1 {
		t.Errorf("translation not at the end of the unrolled matrix: %v", f)
	}
}

func TestTranspose(t *testing.T) {
	m := NewTranslation(Vec3{X: 1, Y: 2, Z: 3})
	mT := m.Transpose()
	if mT[3][0] != 1 || mT[3][1] != 2 || mT[3][2] != 3 {
		t.Errorf("transpose did not move translation into the last row:\n%s", mT)
	}
	if !mT.Transpose().Equals(m) {
		t.Errorf("transposing twice should be a no-op")
	}
}
