package decal

import "github.com/lixenwraith/stepclimb/parameter"

// Piece is one sub-ellipse of a blot, offset and sized in pixels relative to the blot anchor
type Piece struct {
	RX    float64 `yaml:"rx"`
	RY    float64 `yaml:"ry"`
	RW    float64 `yaml:"rw"`
	RH    float64 `yaml:"rh"`
	Angle float64 `yaml:"angle"`
}

// Blot is a jagged splatter: a center ellipse plus its pieces
type Blot struct {
	OX     float64 `yaml:"ox"`
	OY     float64 `yaml:"oy"`
	Size   float64 `yaml:"size"`
	Pieces []Piece `yaml:"pieces"`
}

// Center returns the always-present center ellipse
func (b Blot) Center() Piece {
	return Piece{
		RW: b.Size * parameter.DecalCenterRW,
		RH: b.Size * parameter.DecalCenterRH,
	}
}

// Drip is a streak running down from its anchor
// Animated length and alpha belong to the renderer, only the bounds are recorded
type Drip struct {
	OX        float64 `yaml:"ox"`
	OY        float64 `yaml:"oy"`
	MaxLength float64 `yaml:"max_length"`
	Width     float64 `yaml:"width"`
}

// Record is the cached ornament for one cell
type Record struct {
	Cell  int    `yaml:"cell"`
	Seed  uint32 `yaml:"seed"`
	Blots []Blot `yaml:"blots"`
	Drips []Drip `yaml:"drips"`
}

// PieceCount returns the total pieces across all blots
func (r *Record) PieceCount() int {
	n := 0
	for _, b := range r.Blots {
		n += len(b.Pieces)
	}
	return n
}
