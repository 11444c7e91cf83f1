package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order. The edge i
// runs from vertex i to vertex i+1 (mod Len). Derived per-edge data is
// computed by CalculateData and refreshed by the transform constructors.
type Polygon struct {
	Vertices []Point2D

	edgeLengths []float64
	tangents    []float64
	bboxMin     Point2D
	bboxMax     Point2D
	longestDir  float64
	hasData     bool
}

// NewPolygon creates a polygon from a list of vertices and computes its
// derived data.
func NewPolygon(pts ...Point2D) *Polygon {
	p := &Polygon{Vertices: pts}
	p.CalculateData()
	return p
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p *Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Mod folds an index into the cyclic vertex range.
func (p *Polygon) Mod(i int) int {
	n := len(p.Vertices)
	return ((i % n) + n) % n
}

// At returns the i-th vertex with modular indexing.
func (p *Polygon) At(i int) Point2D {
	return p.Vertices[p.Mod(i)]
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p *Polygon) Edge(i int) (Point2D, Point2D) {
	return p.At(i), p.At(i + 1)
}

// CalculateData recomputes edge lengths, edge tangent angles, the bounding
// box and the longest-edge direction. Must be called again whenever the
// vertices change; Rotated and Translated do so on the copies they return.
func (p *Polygon) CalculateData() {
	n := len(p.Vertices)
	p.edgeLengths = make([]float64, n)
	p.tangents = make([]float64, n)
	if n == 0 {
		p.hasData = false
		return
	}
	p.bboxMin = p.Vertices[0]
	p.bboxMax = p.Vertices[0]
	longest := 0.0
	p.longestDir = 0
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		p.edgeLengths[i] = a.Distance(b)
		p.tangents[i] = a.AngleTo(b)
		if p.edgeLengths[i] > longest {
			longest = p.edgeLengths[i]
			p.longestDir = p.tangents[i] * 180 / math.Pi
		}
		v := p.Vertices[i]
		if v.X < p.bboxMin.X {
			p.bboxMin.X = v.X
		}
		if v.Y < p.bboxMin.Y {
			p.bboxMin.Y = v.Y
		}
		if v.X > p.bboxMax.X {
			p.bboxMax.X = v.X
		}
		if v.Y > p.bboxMax.Y {
			p.bboxMax.Y = v.Y
		}
	}
	p.hasData = true
}

// EdgeLength returns the length of edge i (vertex i to vertex i+1).
func (p *Polygon) EdgeLength(i int) float64 {
	return p.edgeLengths[p.Mod(i)]
}

// TangentAt returns the tangent angle at vertex i, the angle of the edge
// leaving that vertex, in radians.
func (p *Polygon) TangentAt(i int) float64 {
	return p.tangents[p.Mod(i)]
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p *Polygon) BoundingBox() (Point2D, Point2D) {
	return p.bboxMin, p.bboxMax
}

// LongestEdgeDirection returns the direction of the longest edge in degrees,
// a proxy for the field's dominant axis. Zero for a polygon without vertices;
// polygons with fewer than 3 vertices still report their longest edge.
func (p *Polygon) LongestEdgeDirection() float64 {
	return p.longestDir
}

// HasDirection reports whether a longest-edge direction is defined.
func (p *Polygon) HasDirection() bool {
	return p.hasData && !p.IsEmpty()
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p *Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p *Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the centroid of the polygon.
func (p *Polygon) Centroid() Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return Point2D{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		// Degenerate: return average.
		sum := Point2D{}
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cy * f}
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p *Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Perimeter returns the total perimeter length.
func (p *Polygon) Perimeter() float64 {
	total := 0.0
	for _, l := range p.edgeLengths {
		total += l
	}
	return total
}

// Rotated returns a copy of the polygon rotated by angle radians around the
// origin, with derived data recomputed.
func (p *Polygon) Rotated(angle float64) *Polygon {
	pts := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Rotate(angle)
	}
	return NewPolygon(pts...)
}

// Translated returns a copy of the polygon translated by d, with derived
// data recomputed.
func (p *Polygon) Translated(d Point2D) *Polygon {
	pts := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Add(d)
	}
	return NewPolygon(pts...)
}

// Indices returns the cyclic vertex indices walking from start to end
// inclusive, in direction step (+1 or -1). A full cycle is the upper bound;
// if end is never reached the walk stops after one lap.
func (p *Polygon) Indices(start, end, step int) []int {
	n := len(p.Vertices)
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	i := p.Mod(start)
	end = p.Mod(end)
	for s := 0; s < n; s++ {
		out = append(out, i)
		if i == end {
			break
		}
		i = p.Mod(i + step)
	}
	return out
}

// WalkDistance accumulates edge lengths walking the cycle from vertex ix1 to
// vertex ix2 in direction step. Returns +Inf if ix2 is not reached within one
// lap (out-of-range index).
func (p *Polygon) WalkDistance(ix1, ix2, step int) float64 {
	n := len(p.Vertices)
	if n == 0 || ix2 < 0 || ix2 >= n {
		return math.Inf(1)
	}
	sum := 0.0
	i := p.Mod(ix1)
	for s := 0; s < n; s++ {
		if i == ix2 {
			return sum
		}
		if step > 0 {
			sum += p.EdgeLength(i)
		} else {
			sum += p.EdgeLength(i - 1)
		}
		i = p.Mod(i + step)
	}
	return math.Inf(1)
}

// ApproximateCircle returns a regular n-gon approximating a circle.
func ApproximateCircle(center Point2D, radius float64, n int) *Polygon {
	pts := make([]Point2D, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = center.Add(Pt(radius*math.Cos(a), radius*math.Sin(a)))
	}
	return NewPolygon(pts...)
}
