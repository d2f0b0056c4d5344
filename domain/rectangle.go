package domain

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned rectangular patrol region. Spacing controls
// both how densely Fence lays out perimeter sensors and how far outside the
// nominal rectangle those fence sensors sit, so that interior sensors can
// still form simplices with the fence without immediately crowding it.
type Rectangle struct {
	XMin, XMax float64
	YMin, YMax float64
	Spacing    float64
}

// virtualOffset is the fence's standoff distance from the nominal rectangle,
// spacing*sin(pi/6), matching the angle the original implementation used to
// keep a ring of fence points from clustering at the corners.
func (r Rectangle) virtualOffset() float64 {
	return r.Spacing * math.Sin(math.Pi/6)
}

func (r Rectangle) Contains(pos []float64) (bool, error) {
	if len(pos) != 2 {
		return false, fmt.Errorf("%w: want 2, got %d", ErrDimensionMismatch, len(pos))
	}
	x, y := pos[0], pos[1]
	return x > r.XMin && x < r.XMax && y > r.YMin && y < r.YMax, nil
}

// Reflect clamps pos to the nominal rectangle by mirroring it back across
// whichever wall it crossed, and flips the corresponding velocity
// component(s). Position mirroring follows reflect_point's per-axis
// x_min + abs(x_min - pos[0]) form; velocity reflection is expressed
// directly on the vector's components rather than recomputed from an
// arctan2 angle, since a []float64 velocity is the natural representation
// here and flipping the sign of the offending component is equivalent.
func (r Rectangle) Reflect(pos, vel []float64) (newPos, newVel []float64, err error) {
	if len(pos) != 2 || len(vel) != 2 {
		return nil, nil, fmt.Errorf("%w: want 2, got pos=%d vel=%d", ErrDimensionMismatch, len(pos), len(vel))
	}

	newPos = []float64{pos[0], pos[1]}
	newVel = []float64{vel[0], vel[1]}

	if pos[0] <= r.XMin {
		newPos[0] = r.XMin + math.Abs(r.XMin-pos[0])
		newVel[0] = -newVel[0]
	} else if pos[0] >= r.XMax {
		newPos[0] = r.XMax - math.Abs(pos[0]-r.XMax)
		newVel[0] = -newVel[0]
	}

	if pos[1] <= r.YMin {
		newPos[1] = r.YMin + math.Abs(r.YMin-pos[1])
		newVel[1] = -newVel[1]
	} else if pos[1] >= r.YMax {
		newPos[1] = r.YMax - math.Abs(pos[1]-r.YMax)
		newVel[1] = -newVel[1]
	}

	return newPos, newVel, nil
}

// Fence walks the virtual boundary counterclockwise starting at the bottom
// left corner, placing points every Spacing units, matching
// generate_boundary_points's side-by-side counterclockwise walk.
func (r Rectangle) Fence() [][]float64 {
	dx := r.virtualOffset()
	xMin, xMax := r.XMin-dx, r.XMax+dx
	yMin, yMax := r.YMin-dx, r.YMax+dx

	var pts [][]float64

	for x := xMin; x < xMax; x += r.Spacing {
		pts = append(pts, []float64{x, yMin})
	}
	for y := yMin; y < yMax; y += r.Spacing {
		pts = append(pts, []float64{xMax, y})
	}
	for x := xMax; x > xMin; x -= r.Spacing {
		pts = append(pts, []float64{x, yMax})
	}
	for y := yMax; y > yMin; y -= r.Spacing {
		pts = append(pts, []float64{xMin, y})
	}

	return pts
}
