package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"half", 10, 20, 0.5, 15},
		{"descending", 60, 20, 0.25, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want float64
	}{
		{"below", 10, 20},
		{"inside", 40, 40},
		{"above", 70, 60},
		{"at_min", 20, 20},
		{"at_max", 60, 60},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, 20, 60); got != c.want {
				t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}
