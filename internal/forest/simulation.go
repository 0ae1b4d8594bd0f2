package forest

import (
	"forestfire/internal/core"
	pcore "forestfire/pkg/core"
)

// Simulation owns the current forest grid and advances it one tick at a time.
type Simulation struct {
	cfg Config

	cur *Grid
	nxt *Grid

	display []uint8
	tick    int

	src pcore.Source

	// owned is set when src is an RNG created from the config seed, so Reset
	// can reseed it. Injected sources are left alone.
	owned bool
}

var _ core.Sim = (*Simulation)(nil)

// New validates cfg and returns a populated simulation seeded from cfg.Seed.
func New(cfg Config) (*Simulation, error) {
	return NewWithSource(cfg, nil)
}

// NewWithSource is like New but draws from src. A nil src falls back to an
// RNG seeded from cfg.Seed.
func NewWithSource(cfg Config, src pcore.Source) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{cfg: cfg, src: src}
	if src == nil {
		s.src = pcore.NewRNG(cfg.Seed)
		s.owned = true
	}
	s.populate()
	return s, nil
}

func (s *Simulation) populate() {
	p := s.cfg.Params
	s.cur = Populate(s.cfg.Width, s.cfg.Height, p.InitialTreeDensity, s.src)
	if p.Lake {
		StampLake(s.cur, s.cfg.Width/2, s.cfg.Height/2, p.LakeRadius)
	}
	s.nxt = NewGrid(s.cfg.Width, s.cfg.Height)
	s.display = make([]uint8, s.cfg.Width*s.cfg.Height)
	s.tick = 0
	s.rebuildDisplay()
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "forestfire" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Grid returns the current generation. The grid stays valid until the next
// call to Step or Reset.
func (s *Simulation) Grid() *Grid { return s.cur }

// Tick is the number of steps taken since the last reset.
func (s *Simulation) Tick() int { return s.tick }

// Census counts the cells of the current generation.
func (s *Simulation) Census() Census { return s.cur.Census() }

// Cells exposes the current generation as palette indices.
func (s *Simulation) Cells() []uint8 { return s.display }

// Reset builds a new initial forest. A non-zero seed reseeds the simulation's
// own RNG; zero reuses the configured seed. Injected sources keep their state.
func (s *Simulation) Reset(seed int64) {
	if s.owned {
		effective := seed
		if effective == 0 {
			effective = s.cfg.Seed
		}
		s.src = pcore.NewRNG(effective)
	}
	s.populate()
}

// Step advances the forest by one tick.
func (s *Simulation) Step() {
	Advance(s.nxt, s.cur, s.cfg.Params, s.src)
	s.cur, s.nxt = s.nxt, s.cur
	s.tick++
	s.rebuildDisplay()
}

func (s *Simulation) rebuildDisplay() {
	for i, c := range s.cur.cells {
		s.display[i] = uint8(c)
	}
}
