package course

import (
	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// Spacing of generated waypoints along a row, and the shortest segment worth
// keeping at a row end.
const (
	WaypointDistance    = 5.0
	MinWaypointDistance = 0.25 * WaypointDistance
)

// A block with fewer rows than this is penalized by the angle searcher.
const smallBlockTrackCountLimit = 5

// Mode selects the row traversal pattern within a block.
type Mode int

const (
	ModeUpDown   Mode = 1
	ModeSpiral   Mode = 2
	ModeCircular Mode = 3
	ModeLands    Mode = 4
)

// Corner identifies a corner of a block's bounding quadrilateral. The
// numeric values are stable; the exit corner table is indexed by them.
type Corner int

const (
	CornerBL Corner = 1
	CornerBR Corner = 2
	CornerTL Corner = 3
	CornerTR Corner = 4
)

// IsBottom reports whether the corner lies on the block's bottom row.
func (c Corner) IsBottom() bool { return c == CornerBL || c == CornerBR }

// IsLeft reports whether the corner lies on the left end of its row.
func (c Corner) IsLeft() bool { return c == CornerBL || c == CornerTL }

// RidgeMarker indicates which side of the implement leaves a visual track.
type RidgeMarker int

const (
	RidgeNone RidgeMarker = iota
	RidgeLeft
	RidgeRight
)

// HeadlandID identifies a headland polygon by stable ID rather than pointer
// identity: the field boundary's headlands carry Island == 0, island
// headlands the island's ID.
type HeadlandID struct {
	Island int `json:"island"`
	Pass   int `json:"pass"`
}

// IsField reports whether the headland belongs to the field boundary.
func (h HeadlandID) IsField() bool { return h.Island == 0 }

// Intersection is a crossing between a row and a headland polygon edge.
type Intersection struct {
	Point    geo.Point2D
	Angle    float64 // tangent angle of the crossed edge
	Headland HeadlandID
	EdgeFrom int // index of the crossed edge's start vertex
	EdgeTo   int // index of the crossed edge's end vertex
	RowNum   int // original row number of the crossing row
	Label    string
	deleted  bool
}

// Waypoint is one point of the output polyline with its working tags.
type Waypoint struct {
	geo.Point2D
	TurnStart         bool
	TurnEnd           bool
	RowNumber         int
	OriginalRowNumber int
	FirstTrack        bool
	LastTrack         bool
	ConnectingTrack   bool
	UpDownRowStart    bool
	Ridge             RidgeMarker
	AdjacentIslands   map[int]bool
}

// Row is one parallel pass across the field interior, first as a raw
// bounding-box-wide segment, then trimmed to its two boundary intersections.
type Row struct {
	From            geo.Point2D
	To              geo.Point2D
	Intersections   []Intersection
	OriginalNumber  int
	OnIsland        int // island ID the row crosses, 0 for none
	AdjacentIslands map[int]bool
	Waypoints       []Waypoint
}

// Y returns the row's constant y coordinate in the rotated frame.
func (r *Row) Y() float64 { return r.From.Y }

// Block is a maximal contiguous group of rows whose endpoints lie on the
// same boundary segments, stored bottom row first with exactly two
// intersections per row.
type Block struct {
	ID              int
	Rows            []*Row
	EntryCorner     Corner
	DirectionToNext int // -1 or +1, set by the sequencer
}

// CornerIntersection returns the boundary intersection at the given block
// corner: BL/BR from the bottom row, TL/TR from the top row.
func (b *Block) CornerIntersection(c Corner) Intersection {
	var row *Row
	if c.IsBottom() {
		row = b.Rows[0]
	} else {
		row = b.Rows[len(b.Rows)-1]
	}
	if c.IsLeft() {
		return row.Intersections[0]
	}
	return row.Intersections[len(row.Intersections)-1]
}

// Polygon returns the block's bounding quadrilateral for diagnostics.
func (b *Block) Polygon() *geo.Polygon {
	return geo.NewPolygon(
		b.CornerIntersection(CornerBL).Point,
		b.CornerIntersection(CornerBR).Point,
		b.CornerIntersection(CornerTR).Point,
		b.CornerIntersection(CornerTL).Point,
	)
}

// CenterSettings controls row orientation and traversal of the field center.
type CenterSettings struct {
	Mode                 Mode    `yaml:"mode" json:"mode"`
	RowAngle             float64 `yaml:"row_angle" json:"row_angle"` // radians
	UseBestAngle         bool    `yaml:"use_best_angle" json:"use_best_angle"`
	UseLongestEdgeAngle  bool    `yaml:"use_longest_edge_angle" json:"use_longest_edge_angle"`
	RowsToSkip           int     `yaml:"rows_to_skip" json:"rows_to_skip"`
	LeaveSkippedUnworked bool    `yaml:"leave_skipped_unworked" json:"leave_skipped_unworked"`
	RowsPerLand          int     `yaml:"rows_per_land" json:"rows_per_land"`
	PipeOnLeftSide       bool    `yaml:"pipe_on_left_side" json:"pipe_on_left_side"`
}

// HeadlandSettings describes the headland passes the center must respect.
// Only the pass count matters here: with passes the rows stay a full width
// from the innermost headland, without them half a width from the boundary.
type HeadlandSettings struct {
	Mode   int `yaml:"mode" json:"mode"`
	Passes int `yaml:"passes" json:"passes"`
}

// Island is an obstacle inside the field, represented by the headland tracks
// generated around it. Only the outermost track takes part in row splitting.
type Island struct {
	ID          int
	Headlands   []*geo.Polygon
	OutermostIx int
}

// Outermost returns the island headland polygon rows are split against.
func (i Island) Outermost() *geo.Polygon {
	return i.Headlands[i.OutermostIx]
}

// Input carries everything the generator needs for one invocation.
// Headlands are ordered outermost first; the last one bounds the center.
// When the list is empty the boundary itself takes that role.
type Input struct {
	Boundary    *geo.Polygon
	Headlands   []*geo.Polygon
	CircleStart int // vertex index on the innermost headland where its track ends
	CircleStep  int // direction the headland track was driven, -1 or +1
	Islands     []Island
	Width       float64
	Headland    HeadlandSettings
	Center      CenterSettings
	Seed        int64 // sequencer PRNG seed; 0 picks one from the clock
}

// Course is the generator result. Track is nil when no rows fit, which is
// not an error. OK is false for implausible decompositions.
type Course struct {
	Track           []Waypoint     `json:"track"`
	BestAngleDeg    float64        `json:"best_angle_deg"`
	NParallelTracks int            `json:"n_parallel_tracks"`
	Blocks          []*geo.Polygon `json:"blocks,omitempty"`
	OK              bool           `json:"ok"`
	UpDownRowStart  int            `json:"up_down_row_start"`
	WorkedAreaM2    float64        `json:"worked_area_m2"`
}
