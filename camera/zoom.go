package camera

import "github.com/milk9111/isocam/common"

// zoomSmoother eases the orthographic size toward a target over a fixed
// duration. Every accepted scroll restarts the timer.
type zoomSmoother struct {
	target float64
	timer  float64
	active bool
}

// scroll moves the target by delta, clamps it and restarts the transition.
func (z *zoomSmoother) scroll(delta float64, s Settings) {
	z.target = common.Clamp(z.target+delta, s.ZoomMin, s.ZoomMax)
	z.timer = 0
	z.active = true
}

// step advances the transition by dt and returns the new size. The blend
// factor is timer/duration applied to the current size, so the size eases
// out toward the target; once the duration has elapsed the size lands on the
// target and the transition ends.
func (z *zoomSmoother) step(size, dt float64, s Settings) float64 {
	if !z.active {
		return size
	}
	z.timer += dt
	if z.timer < s.ZoomSmoothTime {
		return common.Lerp(size, z.target, z.timer/s.ZoomSmoothTime)
	}
	z.active = false
	return z.target
}
