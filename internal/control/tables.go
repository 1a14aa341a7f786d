package control

// Shift-point tables: five speed breakpoints (km/h) at throttle load
// indices {10, 25, 50, 75, 100}%.
type shiftTable [5]float64

var (
	upshift12Normal = shiftTable{15, 20, 30, 45, 60}
	upshift23Normal = shiftTable{35, 45, 60, 80, 100}
	upshift34Normal = shiftTable{55, 65, 85, 110, 130}

	upshift12Power = shiftTable{20, 30, 45, 60, 75}
	upshift23Power = shiftTable{45, 60, 80, 100, 120}
	upshift34Power = shiftTable{70, 85, 110, 130, 150}

	downshift21 = shiftTable{10, 12, 18, 25, 35}
	downshift32 = shiftTable{28, 35, 48, 65, 80}
	downshift43 = shiftTable{48, 55, 72, 95, 115}
)

// interp evaluates a shift table at throttle t with integer
// interpolation, truncating toward zero. Below 10% it clamps to T[0];
// above 100% it clamps to T[4].
func interp(t shiftTable, throttle float64) float64 {
	switch {
	case throttle <= 10:
		return float64(int(t[0]))
	case throttle <= 25:
		return lerpTrunc(t[0], t[1], 10, 25, throttle)
	case throttle <= 50:
		return lerpTrunc(t[1], t[2], 25, 50, throttle)
	case throttle <= 75:
		return lerpTrunc(t[2], t[3], 50, 75, throttle)
	default:
		return lerpTrunc(t[3], t[4], 75, 100, throttle)
	}
}

// lerpTrunc linearly interpolates between (x0,y0) and (x1,y1) at x,
// truncating the result toward zero.
func lerpTrunc(y0, y1, x0, x1, x float64) float64 {
	if x > x1 {
		x = x1
	}
	v := y0 + (y1-y0)*(x-x0)/(x1-x0)
	return float64(int(v))
}
