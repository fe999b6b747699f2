package window

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isocam/camera"
)

func TestAppendWheel(t *testing.T) {
	up := camera.MouseButtonEvent{Button: camera.MouseButtonWheelUp, Pressed: true}
	down := camera.MouseButtonEvent{Button: camera.MouseButtonWheelDown, Pressed: true}

	tests := []struct {
		name   string
		deltas []float64
		want   []camera.Event
		rest   float64
	}{
		{"no scroll", []float64{0}, nil, 0},
		{"one notch up", []float64{1}, []camera.Event{up}, 0},
		{"one notch down", []float64{-1}, []camera.Event{down}, 0},
		{"two notches in one frame", []float64{2}, []camera.Event{up, up}, 0},
		{"fractions accumulate", []float64{0.4, 0.4, 0.4}, []camera.Event{up}, 0.2},
		{"remainder carries", []float64{-2.5}, []camera.Event{down, down}, -0.5},
		{"direction change cancels", []float64{0.75, -0.5}, nil, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []camera.Event
			acc := 0.0
			for _, dy := range tt.deltas {
				got, acc = AppendWheel(got, acc, dy)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected events %v, got %v", tt.want, got)
			}
			if math.Abs(acc-tt.rest) > 1e-9 {
				t.Fatalf("expected remainder %v, got %v", tt.rest, acc)
			}
		})
	}
}

func TestConfine(t *testing.T) {
	size := mgl64.Vec2{1920, 1080}

	tests := []struct {
		name string
		pos  mgl64.Vec2
		want mgl64.Vec2
		edge camera.EdgePanState
	}{
		{"inside", mgl64.Vec2{960, 500}, mgl64.Vec2{960, 500}, camera.EdgePanNone},
		{"past left", mgl64.Vec2{-40, 500}, mgl64.Vec2{0, 500}, camera.EdgePanLeft},
		{"past right", mgl64.Vec2{2500, 500}, mgl64.Vec2{1919, 500}, camera.EdgePanRight},
		{"past top", mgl64.Vec2{960, -3}, mgl64.Vec2{960, 0}, camera.EdgePanUp},
		{"past bottom", mgl64.Vec2{960, 1200}, mgl64.Vec2{960, 1079}, camera.EdgePanDown},
		{"past corner", mgl64.Vec2{3000, 3000}, mgl64.Vec2{1919, 1079}, camera.EdgePanRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confine(tt.pos, size)
			if got != tt.want {
				t.Fatalf("Confine(%v) = %v, want %v", tt.pos, got, tt.want)
			}
			if edge := camera.DetectEdgePan(got, size, camera.DefaultSettings().EdgeMargin); edge != tt.edge {
				t.Fatalf("expected %s at %v, got %s", tt.edge, got, edge)
			}
		})
	}
}

func TestConfineWithoutViewport(t *testing.T) {
	pos := mgl64.Vec2{-5, 12}
	if got := Confine(pos, mgl64.Vec2{}); got != pos {
		t.Fatalf("expected position untouched before the first layout, got %v", got)
	}
}
