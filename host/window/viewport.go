// Package window holds the viewport and cursor bookkeeping the ebiten host
// feeds, kept free of ebiten itself.
package window

import "github.com/go-gl/mathgl/mgl64"

type resizeSub struct {
	id int
	fn func()
}

// Viewport tracks the game's outside size as reported to Layout and tells
// subscribers when it changes.
type Viewport struct {
	size mgl64.Vec2
	subs []resizeSub
	next int
}

func NewViewport(w, h int) *Viewport {
	return &Viewport{size: mgl64.Vec2{float64(w), float64(h)}}
}

func (v *Viewport) Size() mgl64.Vec2 {
	return v.size
}

func (v *Viewport) OnResize(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := v.next
	v.next++
	v.subs = append(v.subs, resizeSub{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}

// Resize records a new size. Subscribers run, in registration order, only
// when the size actually changed.
func (v *Viewport) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	size := mgl64.Vec2{float64(w), float64(h)}
	if size == v.size {
		return false
	}
	v.size = size
	for _, s := range append([]resizeSub(nil), v.subs...) {
		s.fn()
	}
	return true
}
