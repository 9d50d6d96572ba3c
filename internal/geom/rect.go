package geom

// Vec2 is a 2D point or velocity in court pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect builds a w×h rectangle whose center is c.
func CenteredRect(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetCenter moves the rectangle so its center lands on c. Size is kept.
func (r *Rect) SetCenter(c Vec2) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}

// Translate shifts the rectangle in place.
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Intersects reports whether the two rectangles overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Left() >= o.Right() || o.Left() >= r.Right() {
		return false
	}
	if r.Top() >= o.Bottom() || o.Top() >= r.Bottom() {
		return false
	}
	return true
}
