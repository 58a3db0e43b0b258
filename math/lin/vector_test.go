// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import "testing"

func TestVecAdd(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4})
	if v != (Vec2{4, 6}) {
		t.Errorf("Add got %v", v)
	}
}

func TestVecSub(t *testing.T) {
	v := Vec2{3, 4}.Sub(Vec2{1, 2})
	if v != (Vec2{2, 2}) {
		t.Errorf("Sub got %v", v)
	}
}

func TestVecScale(t *testing.T) {
	v := Vec2{1, 2}.Scale(3)
	if v != (Vec2{3, 6}) {
		t.Errorf("Scale got %v", v)
	}
}

func TestVecDot(t *testing.T) {
	if d := (Vec2{1, 0}).Dot(Vec2{0, 1}); d != 0 {
		t.Errorf("Dot of perpendiculars should be 0, got %f", d)
	}
	if d := (Vec2{2, 3}).Dot(Vec2{4, 5}); d != 23 {
		t.Errorf("Dot got %f", d)
	}
}

func TestVecCross(t *testing.T) {
	if c := (Vec2{1, 0}).Cross(Vec2{0, 1}); c != 1 {
		t.Errorf("Cross(x,y) should be 1, got %f", c)
	}
}

func TestVecLen(t *testing.T) {
	if l := (Vec2{3, 4}).Len(); l != 5 {
		t.Errorf("Len got %f, want 5", l)
	}
}

func TestVecUnit(t *testing.T) {
	u := Vec2{3, 4}.Unit()
	if !Aeq(u.Len(), 1) {
		t.Errorf("Unit length got %f, want 1", u.Len())
	}
	z := Vec2{}.Unit()
	if z != (Vec2{}) {
		t.Errorf("Unit of zero vector should stay zero, got %v", z)
	}
}

func TestVecNormals(t *testing.T) {
	left := (Vec2{1, 0}).LeftNormal()
	if !left.Aeq(Vec2{0, 1}) {
		t.Errorf("LeftNormal got %v", left)
	}
	right := (Vec2{1, 0}).RightNormal()
	if !right.Aeq(Vec2{0, -1}) {
		t.Errorf("RightNormal got %v", right)
	}
}

func TestVecRotate(t *testing.T) {
	r := (Vec2{1, 0}).Rotate(HalfPi)
	if !r.Aeq(Vec2{0, 1}) {
		t.Errorf("Rotate by pi/2 got %v", r)
	}
}

func TestCCW(t *testing.T) {
	if c := CCW(Vec2{0, 0}, Vec2{1, 0}, Vec2{1, 1}); c <= 0 {
		t.Errorf("CCW should be positive for a counter-clockwise turn, got %f", c)
	}
	if c := CCW(Vec2{0, 0}, Vec2{1, 1}, Vec2{1, 0}); c >= 0 {
		t.Errorf("CCW should be negative for a clockwise turn, got %f", c)
	}
	if c := CCW(Vec2{0, 0}, Vec2{1, 0}, Vec2{2, 0}); c != 0 {
		t.Errorf("CCW should be zero for colinear points, got %f", c)
	}
}
