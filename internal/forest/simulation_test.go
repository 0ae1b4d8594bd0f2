package forest

import (
	"slices"
	"testing"

	"forestfire/pkg/core"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 16
	cfg.Seed = 99
	cfg.Params.LakeRadius = 3
	cfg.Params.GrowChance = 0.05
	cfg.Params.FireChance = 0.05
	return cfg
}

func TestSimulationDeterministic(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 25; i++ {
		if !a.Grid().Equal(b.Grid()) {
			t.Fatalf("same seed diverged at tick %d", i)
		}
		a.Step()
		b.Step()
	}
}

func TestSimulationReset(t *testing.T) {
	sim, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	initial := sim.Grid().Clone()
	for i := 0; i < 10; i++ {
		sim.Step()
	}

	sim.Reset(0)
	if sim.Tick() != 0 {
		t.Fatalf("tick after reset = %d", sim.Tick())
	}
	if !sim.Grid().Equal(initial) {
		t.Fatal("Reset with config seed not deterministic")
	}

	sim.Reset(777)
	seeded := sim.Grid().Clone()
	sim.Reset(777)
	if !sim.Grid().Equal(seeded) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if seeded.Equal(initial) {
		t.Fatal("different seeds should produce different forests")
	}
}

func TestSimulationLakeAtMidpoint(t *testing.T) {
	cfg := DefaultConfig()
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g := sim.Grid()
	if g.At(39, 11) != Water {
		t.Fatal("grid midpoint should be water")
	}
	if g.At(39+7, 11) != Water || g.At(39+8, 11) == Water {
		t.Fatal("lake radius should be 7 cells")
	}

	cfg.Params.Lake = false
	sim, err = New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n := sim.Grid().Count(Water); n != 0 {
		t.Fatalf("lake disabled but %d water cells present", n)
	}
}

func TestSimulationInjectedSource(t *testing.T) {
	cfg := smallConfig()
	cfg.Params.Lake = false
	cfg.Params.InitialTreeDensity = 1
	sim, err := NewWithSource(cfg, core.Constant(1))
	if err != nil {
		t.Fatalf("NewWithSource: %v", err)
	}
	if got := sim.Census().Tree; got != cfg.Width*cfg.Height {
		t.Fatalf("expected a full forest, got %d trees", got)
	}
	sim.Step()
	if got := sim.Census().Tree; got != cfg.Width*cfg.Height {
		t.Fatalf("constant 1.0 should never ignite at 5%%, got %d trees", got)
	}
}

func TestSimulationCellsMirrorGrid(t *testing.T) {
	sim, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 5; i++ {
		cells := sim.Cells()
		grid := sim.Grid().Cells()
		if len(cells) != len(grid) {
			t.Fatalf("display has %d cells, grid %d", len(cells), len(grid))
		}
		for j := range grid {
			if cells[j] != uint8(grid[j]) {
				t.Fatalf("tick %d: display[%d]=%d, grid=%v", i, j, cells[j], grid[j])
			}
		}
		sim.Step()
	}
	if n := len(sim.Palette()); n != NumCells {
		t.Fatalf("palette has %d entries, expected %d", n, NumCells)
	}
	if got := sim.Size(); got.W != 32 || got.H != 16 {
		t.Fatalf("size = %+v", got)
	}
}

func TestLookGlyphs(t *testing.T) {
	got := []rune{Glyph(Empty), Glyph(Tree), Glyph(Burning), Glyph(Water), Glyph(Cell(9))}
	want := []rune{' ', 'A', '@', '~', ' '}
	if !slices.Equal(got, want) {
		t.Fatalf("glyphs = %q, expected %q", string(got), string(want))
	}
}
