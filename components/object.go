package components

import (
	"github.com/automoto/fightcore/catalog"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its resolv hurtbox object.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Rect is an axis-aligned box in arena coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Place resolves a catalog box against an origin. Facing left mirrors the
// box around the origin's vertical axis.
func Place(b catalog.Box, origin math.Vec2, facing float64) Rect {
	x := origin.X + b.X
	if facing < 0 {
		x = origin.X - b.X - b.Width
	}
	return Rect{X: x, Y: origin.Y + b.Y, W: b.Width, H: b.Height}
}

// Overlaps is a strict AABB test; boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// MoveTo repositions obj to r and refreshes its cells in the space.
func MoveTo(obj *resolv.Object, r Rect) {
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
	obj.Update()
}
