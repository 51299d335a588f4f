package decal

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/stepclimb/parameter"
	"github.com/lixenwraith/stepclimb/vmath"
)

// Generator memoizes one Record per cell index
// Safe for concurrent use, each cell is generated at most once between resets
type Generator struct {
	cfg Config

	mu    sync.RWMutex
	cache map[int]*Record

	generations atomic.Uint64
}

// New validates cfg and returns a generator with an empty cache
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:   cfg,
		cache: make(map[int]*Record),
	}, nil
}

// Config returns the configuration the generator was created with
func (g *Generator) Config() Config {
	return g.cfg
}

// GetOrCreate returns the record for cell, generating it on first request
// Panics on a negative cell index, which is a caller bug
func (g *Generator) GetOrCreate(cell int) *Record {
	if cell < 0 {
		panic(fmt.Sprintf("decal: negative cell index %d", cell))
	}

	g.mu.RLock()
	rec, ok := g.cache[cell]
	g.mu.RUnlock()
	if ok {
		return rec
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// Another caller may have generated it between the locks
	if rec, ok = g.cache[cell]; ok {
		return rec
	}
	rec = generate(g.cfg, cell)
	g.cache[cell] = rec
	g.generations.Add(1)
	return rec
}

// Peek returns the cached record for cell without generating it
func (g *Generator) Peek(cell int) (*Record, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.cache[cell]
	return rec, ok
}

// Warm generates records for every cell in [first,last]
func (g *Generator) Warm(first, last int) {
	if first < 0 {
		first = 0
	}
	for i := first; i <= last; i++ {
		g.GetOrCreate(i)
	}
}

// Len returns the number of cached records
func (g *Generator) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cache)
}

// Generations returns how many records were generated since creation, across resets
func (g *Generator) Generations() uint64 {
	return g.generations.Load()
}

// Reset drops every cached record
// Regenerated records are identical while the seed is unchanged
func (g *Generator) Reset() {
	g.mu.Lock()
	g.cache = make(map[int]*Record)
	g.mu.Unlock()
}

// generate is the pure derivation of a record from config and cell index
func generate(cfg Config, cell int) *Record {
	seed := vmath.LocalSeed(cfg.GlobalSeed, cell)
	rng := vmath.NewMulberry32(seed)

	rec := &Record{Cell: cell, Seed: seed}

	blotCount := rng.IntRange(cfg.BlotCount.Min, cfg.BlotCount.Max)
	rec.Blots = make([]Blot, 0, blotCount)
	for i := 0; i < blotCount; i++ {
		rec.Blots = append(rec.Blots, generateBlot(cfg, rng))
	}

	for _, b := range rec.Blots {
		drips := rng.IntRange(cfg.DripCount.Min, cfg.DripCount.Max)
		for j := 0; j < drips; j++ {
			rec.Drips = append(rec.Drips, Drip{
				OX:        vmath.Clamp01(b.OX + rng.Range(-parameter.DecalDripJitterX, parameter.DecalDripJitterX)),
				OY:        vmath.Clamp01(b.OY + rng.Range(0, parameter.DecalDripJitterY)),
				MaxLength: rng.Range(cfg.DripLength.Min, cfg.DripLength.Max),
				Width:     rng.Range(cfg.DripWidth.Min, cfg.DripWidth.Max),
			})
		}
	}

	return rec
}

func generateBlot(cfg Config, rng *vmath.Mulberry32) Blot {
	b := Blot{
		OX:   rng.Range(parameter.DecalAnchorXMin, parameter.DecalAnchorXMax),
		OY:   rng.Range(0, parameter.DecalAnchorYMax),
		Size: cfg.NominalCellWidth * rng.Range(cfg.BlotSize.Min, cfg.BlotSize.Max),
	}

	n := pieceCount(cfg, b.Size)
	b.Pieces = make([]Piece, n)
	for i := range b.Pieces {
		dist := rng.Float64() * parameter.DecalPieceOffsetMax * b.Size
		theta := rng.Float64() * 2 * math.Pi
		sin, cos := math.Sincos(theta)
		b.Pieces[i] = Piece{
			RX:    cos * dist,
			RY:    sin * dist,
			RW:    b.Size * rng.Range(parameter.DecalPieceRadiusMin, parameter.DecalPieceRadiusMax),
			RH:    b.Size * rng.Range(parameter.DecalPieceRadiusMin, parameter.DecalPieceRadiusMax),
			Angle: rng.Float64() * math.Pi,
		}
	}
	return b
}

// pieceCount grows with blot size so larger blots look more jagged
func pieceCount(cfg Config, size float64) int {
	n := cfg.PieceBase + int(size*cfg.PieceSizeFactor)
	if n > cfg.PieceMax {
		n = cfg.PieceMax
	}
	return n
}
