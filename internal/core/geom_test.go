package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(10, 10, 6, 4)
	if r.X != 7 || r.Y != 8 || r.W != 6 || r.H != 4 {
		t.Errorf("CenteredRect(10, 10, 6, 4) = %+v", r)
	}

	cx, cy := r.Center()
	if cx != 10 || cy != 10 {
		t.Errorf("Center of centered rect = (%d, %d), expected (10, 10)", cx, cy)
	}
}
