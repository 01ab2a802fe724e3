package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxExtend(t *testing.T) {
	box := NewBox()

	box.Extend(r3.Vec{X: 1, Y: 2, Z: 3})
	box.Extend(r3.Vec{X: 4, Y: 5, Z: 6})
	box.Extend(r3.Vec{X: -1, Y: 0, Z: 2})

	expectedMin := r3.Vec{X: -1, Y: 0, Z: 2}
	expectedMax := r3.Vec{X: 4, Y: 5, Z: 6}

	if box.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, box.Min)
	}
	if box.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, box.Max)
	}
}

func TestBoxSize(t *testing.T) {
	box := NewBox()
	box.Extend(r3.Vec{X: 0, Y: 0, Z: 0})
	box.Extend(r3.Vec{X: 10, Y: 20, Z: 30})

	size := box.Size()
	expected := r3.Vec{X: 10, Y: 20, Z: 30}

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
}

func TestBoxCenter(t *testing.T) {
	box := NewBox()
	box.Extend(r3.Vec{X: 0, Y: 0, Z: 0})
	box.Extend(r3.Vec{X: 10, Y: 20, Z: 30})

	center := box.Center()
	expected := r3.Vec{X: 5, Y: 10, Z: 15}

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoxVolume(t *testing.T) {
	box := NewBox()
	box.Extend(r3.Vec{X: 0, Y: 0, Z: 0})
	box.Extend(r3.Vec{X: 2, Y: 3, Z: 4})

	volume := box.Volume()
	expected := 24.0 // 2 * 3 * 4 = 24

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expected, volume)
	}
}

func TestBoxDiagonal(t *testing.T) {
	box := NewBox()
	box.Extend(r3.Vec{X: 0, Y: 0, Z: 0})
	box.Extend(r3.Vec{X: 3, Y: 4, Z: 0})

	diagonal := box.Diagonal()
	expected := 5.0

	if math.Abs(diagonal-expected) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", expected, diagonal)
	}
}

func TestBoxContains(t *testing.T) {
	box := NewBox()
	box.Extend(r3.Vec{X: 0, Y: 0, Z: 0})
	box.Extend(r3.Vec{X: 1, Y: 1, Z: 1})

	tests := []struct {
		name  string
		point r3.Vec
		want  bool
	}{
		{"interior", r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, true},
		{"corner", r3.Vec{X: 1, Y: 1, Z: 1}, true},
		{"face", r3.Vec{X: 0, Y: 0.5, Z: 0.5}, true},
		{"outside", r3.Vec{X: 2, Y: 0.5, Z: 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestBoxEmptyContainsNothing(t *testing.T) {
	box := NewBox()
	if box.Contains(r3.Vec{X: 0, Y: 0, Z: 0}) {
		t.Error("empty box should not contain any point")
	}
}
