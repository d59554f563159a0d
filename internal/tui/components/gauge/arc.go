package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// screen angles: 0° is 3 o'clock and angles grow clockwise, so the risk
// arc starts at 12 o'clock (270°) and fills clockwise
const (
	arcStartAngle = 270.0
	arcSweep      = 360.0
	arcThickness  = 3
)

// drawRing plots arcThickness concentric midpoint circles, keeping only the
// points whose angle lies in [from, from+sweep].
func drawRing(canvas *drawille.Canvas, cx, cy, radius, from, sweep float64) {
	for t := range arcThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}
		plotCircle(int(cx), int(cy), r, func(x, y int) {
			if withinSweep(float64(x)-cx, float64(y)-cy, from, sweep) {
				canvas.Set(x, y)
			}
		})
	}
}

// plotCircle walks one octant with the midpoint algorithm and mirrors each
// step into the other seven.
func plotCircle(cx, cy, r int, plot func(x, y int)) {
	x, y := r, 0
	d := 1 - r

	for x >= y {
		plot(cx+x, cy-y)
		plot(cx+y, cy-x)
		plot(cx-y, cy-x)
		plot(cx-x, cy-y)
		plot(cx-x, cy+y)
		plot(cx-y, cy+x)
		plot(cx+y, cy+x)
		plot(cx+x, cy+y)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func withinSweep(dx, dy, from, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	angle := math.Mod(math.Atan2(dy, dx)*180/math.Pi+360, 360)
	offset := math.Mod(angle-from+360, 360)
	return offset <= sweep
}

func drawFullArc(canvas *drawille.Canvas, cx, cy, radius float64) {
	drawRing(canvas, cx, cy, radius, arcStartAngle, arcSweep)
}

func drawFilledArc(canvas *drawille.Canvas, cx, cy, radius, fraction float64) {
	if fraction <= 0 {
		return
	}
	drawRing(canvas, cx, cy, radius, arcStartAngle, min(fraction, 1)*arcSweep)
}
