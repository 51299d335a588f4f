package decal

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stepclimb/parameter"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid decal config")

// Range is a float interval, draws from it land in [Min,Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies in [Min,Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// IntRange is an inclusive integer interval [Min,Max]
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n lies in [Min,Max]
func (r IntRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Config parameterizes a Generator
type Config struct {
	GlobalSeed       int32    `yaml:"seed"`
	NominalCellWidth float64  `yaml:"nominal_cell_width"`
	BlotCount        IntRange `yaml:"blot_count"`
	// BlotSize is the blot base size as a fraction of NominalCellWidth
	BlotSize        Range    `yaml:"blot_size"`
	PieceBase       int      `yaml:"piece_base"`
	PieceSizeFactor float64  `yaml:"piece_size_factor"`
	PieceMax        int      `yaml:"piece_max"`
	DripCount       IntRange `yaml:"drip_count"`
	DripLength      Range    `yaml:"drip_length"`
	DripWidth       Range    `yaml:"drip_width"`
}

// DefaultConfig returns the stock splatter look for a 90px step
func DefaultConfig() Config {
	return Config{
		GlobalSeed:       0,
		NominalCellWidth: parameter.DecalNominalCellWidth,
		BlotCount:        IntRange{parameter.DecalBlotCountMin, parameter.DecalBlotCountMax},
		BlotSize:         Range{parameter.DecalBlotSizeMin, parameter.DecalBlotSizeMax},
		PieceBase:        parameter.DecalPieceBase,
		PieceSizeFactor:  parameter.DecalPieceSizeFactor,
		PieceMax:         parameter.DecalPieceMax,
		DripCount:        IntRange{parameter.DecalDripCountMin, parameter.DecalDripCountMax},
		DripLength:       Range{parameter.DecalDripLengthMin, parameter.DecalDripLengthMax},
		DripWidth:        Range{parameter.DecalDripWidthMin, parameter.DecalDripWidthMax},
	}
}

// Validate checks ranges are ordered and counts are usable
func (c Config) Validate() error {
	if c.NominalCellWidth <= 0 {
		return fmt.Errorf("%w: nominal_cell_width must be positive, got %v", ErrInvalidConfig, c.NominalCellWidth)
	}
	if err := checkIntRange("blot_count", c.BlotCount); err != nil {
		return err
	}
	if err := checkIntRange("drip_count", c.DripCount); err != nil {
		return err
	}
	if c.BlotSize.Min <= 0 {
		return fmt.Errorf("%w: blot_size.min must be positive, got %v", ErrInvalidConfig, c.BlotSize.Min)
	}
	for _, r := range []struct {
		name string
		rng  Range
	}{
		{"blot_size", c.BlotSize},
		{"drip_length", c.DripLength},
		{"drip_width", c.DripWidth},
	} {
		if r.rng.Min < 0 || r.rng.Max < r.rng.Min {
			return fmt.Errorf("%w: %s [%v,%v] must be non-negative and ordered", ErrInvalidConfig, r.name, r.rng.Min, r.rng.Max)
		}
	}
	if c.PieceBase < 0 {
		return fmt.Errorf("%w: piece_base must be non-negative, got %d", ErrInvalidConfig, c.PieceBase)
	}
	if c.PieceSizeFactor < 0 {
		return fmt.Errorf("%w: piece_size_factor must be non-negative, got %v", ErrInvalidConfig, c.PieceSizeFactor)
	}
	if c.PieceMax < c.PieceBase {
		return fmt.Errorf("%w: piece_max %d below piece_base %d", ErrInvalidConfig, c.PieceMax, c.PieceBase)
	}
	return nil
}

func checkIntRange(name string, r IntRange) error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%w: %s [%d,%d] must be non-negative and ordered", ErrInvalidConfig, name, r.Min, r.Max)
	}
	return nil
}
