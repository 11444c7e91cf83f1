package field

import (
	"github.com/HaploAW/Courseplay-FS22/pkg/course"
	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// FieldSpec is the declarative description of one field course job: the
// boundary, obstacle islands, the implement and how the center is worked.
type FieldSpec struct {
	SpecVersion string       `yaml:"spec_version" json:"spec_version"`
	Name        string       `yaml:"name" json:"name"`
	Boundary    [][2]float64 `yaml:"boundary" json:"boundary"`
	Islands     []IslandDef  `yaml:"islands" json:"islands"`
	Width       float64      `yaml:"width" json:"width"`

	Headland course.HeadlandSettings `yaml:"headland" json:"headland"`
	Center   course.CenterSettings   `yaml:"center" json:"center"`

	Seed int64 `yaml:"seed" json:"seed"`
}

// IslandDef is one obstacle inside the field.
type IslandDef struct {
	ID       int          `yaml:"id" json:"id"`
	Boundary [][2]float64 `yaml:"boundary" json:"boundary"`
}

// ToInput converts the parsed spec into generator input. Headland passes are
// generated elsewhere; without them the boundary itself bounds the center
// and each island's boundary stands in for its outermost headland track.
func (s *FieldSpec) ToInput() *course.Input {
	in := &course.Input{
		Boundary:   toPolygon(s.Boundary),
		Width:      s.Width,
		Headland:   s.Headland,
		Center:     s.Center,
		CircleStep: 1,
		Seed:       s.Seed,
	}
	for _, is := range s.Islands {
		in.Islands = append(in.Islands, course.Island{
			ID:        is.ID,
			Headlands: []*geo.Polygon{toPolygon(is.Boundary)},
		})
	}
	return in
}

func toPolygon(pts [][2]float64) *geo.Polygon {
	vs := make([]geo.Point2D, len(pts))
	for i, p := range pts {
		vs[i] = geo.Pt(p[0], p[1])
	}
	return geo.NewPolygon(vs...)
}
