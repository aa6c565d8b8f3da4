package lovetree

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is everything the engine needs, supplied once at construction.
// Zero fields are filled by resolve; see each field for its default.
type Config struct {
	// Width and Height are the surface size. Default 1100×680.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// RandSeed seeds placement and color randomness. Zero picks one from
	// the clock.
	RandSeed uint64 `toml:"rand_seed"`

	Seed    SeedConfig    `toml:"seed"`
	Bloom   BloomConfig   `toml:"bloom"`
	Footer  FooterConfig  `toml:"footer"`
	Move    MoveConfig    `toml:"move"`
	Timing  TimingConfig  `toml:"timing"`
	Overlay OverlayConfig `toml:"overlay"`

	// Branches are the root branch definitions. In TOML they are written as
	// nested arrays under "branches"; see ParseBranchDefs.
	Branches    []BranchDef `toml:"-"`
	RawBranches []any       `toml:"branches,omitempty"`
}

// SeedConfig places the seed icon.
type SeedConfig struct {
	X     float64 `toml:"x"`     // default Width/2
	Y     float64 `toml:"y"`     // default Height/2
	Color Color   `toml:"color"` // default #ff0000
	Scale float64 `toml:"scale"` // default 1
}

// BloomConfig sizes the dormant flower pool.
type BloomConfig struct {
	Count  int     `toml:"count"`  // default 500
	Width  float64 `toml:"width"`  // placement box width, default Width
	Height float64 `toml:"height"` // placement box height, default Height
	Radius float64 `toml:"radius"` // heart radius, default 240
}

// FooterConfig shapes the ground line.
type FooterConfig struct {
	Width  float64 `toml:"width"`  // default Width
	Height float64 `toml:"height"` // default 5
	Speed  float64 `toml:"speed"`  // default 2
}

// MoveConfig is the region captured once flowering ends and where it slides
// to. The region is moved as pixels, not redrawn.
type MoveConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"` // with Height, default 610×Height at (240, 0)
	Height float64 `toml:"height"`
	ToX    float64 `toml:"to_x"` // default 500
	ToY    float64 `toml:"to_y"`
}

// TimingConfig sets the driver cadence for each phase.
type TimingConfig struct {
	Tick         time.Duration `toml:"tick"`          // default 10ms
	LoopTick     time.Duration `toml:"loop_tick"`     // default 26ms
	OverlayTick  time.Duration `toml:"overlay_tick"`  // default 1s
	OverlayDelay time.Duration `toml:"overlay_delay"` // default 1s
	OverlayFade  time.Duration `toml:"overlay_fade"`  // default 1s
	Flash        time.Duration `toml:"flash"`         // default 300ms
}

// OverlayConfig is the text shown beside the tree once it has grown.
type OverlayConfig struct {
	Names [2]string `toml:"names"`
	// Since is the moment the elapsed clock counts from. Zero means the
	// moment the overlay appears.
	Since time.Time `toml:"since"`
	Lines []string  `toml:"lines"`
	Color Color     `toml:"color"` // default ColorBark
}

// DefaultConfig returns the stock scene: a 1100×680 surface with the tree
// that grows from the bottom center.
func DefaultConfig() Config {
	cfg := Config{
		Width:  1100,
		Height: 680,
		Seed: SeedConfig{
			X:     1100/2 - 20,
			Color: ColorSeed,
			Scale: 2,
		},
		Bloom:    BloomConfig{Count: 700, Width: 1080, Height: 650},
		Footer:   FooterConfig{Width: 1200, Height: 5, Speed: 10},
		Move:     MoveConfig{X: 240, Width: 610, Height: 680, ToX: 500},
		Branches: DefaultBranches(),
	}
	cfg.RawBranches = EncodeBranchDefs(cfg.Branches)
	return cfg
}

// DefaultBranches is the stock tree: one trunk with five limbs.
func DefaultBranches() []BranchDef {
	return []BranchDef{{
		Start: Vec2{535, 680}, Control: Vec2{570, 250}, End: Vec2{500, 200}, Radius: 30, Length: 100,
		Children: []BranchDef{
			{
				Start: Vec2{540, 500}, Control: Vec2{455, 417}, End: Vec2{340, 400}, Radius: 13, Length: 100,
				Children: []BranchDef{
					{Start: Vec2{450, 435}, Control: Vec2{434, 430}, End: Vec2{394, 395}, Radius: 2, Length: 40},
				},
			},
			{
				Start: Vec2{550, 445}, Control: Vec2{600, 356}, End: Vec2{680, 345}, Radius: 12, Length: 100,
				Children: []BranchDef{
					{Start: Vec2{578, 400}, Control: Vec2{648, 409}, End: Vec2{661, 426}, Radius: 3, Length: 80},
				},
			},
			{Start: Vec2{539, 281}, Control: Vec2{537, 248}, End: Vec2{534, 217}, Radius: 3, Length: 40},
			{
				Start: Vec2{546, 397}, Control: Vec2{413, 247}, End: Vec2{328, 244}, Radius: 9, Length: 80,
				Children: []BranchDef{
					{Start: Vec2{427, 286}, Control: Vec2{383, 253}, End: Vec2{371, 205}, Radius: 2, Length: 40},
					{Start: Vec2{498, 345}, Control: Vec2{435, 315}, End: Vec2{395, 330}, Radius: 4, Length: 60},
				},
			},
			{
				Start: Vec2{546, 357}, Control: Vec2{608, 252}, End: Vec2{678, 221}, Radius: 6, Length: 100,
				Children: []BranchDef{
					{Start: Vec2{590, 293}, Control: Vec2{646, 277}, End: Vec2{648, 271}, Radius: 2, Length: 80},
				},
			},
		},
	}}
}

// resolve fills every unset field with its default.
func (c Config) resolve() Config {
	if c.Width == 0 {
		c.Width = 1100
	}
	if c.Height == 0 {
		c.Height = 680
	}
	if c.RandSeed == 0 {
		c.RandSeed = uint64(time.Now().UnixNano())
	}

	if c.Seed.X == 0 {
		c.Seed.X = float64(c.Width) / 2
	}
	if c.Seed.Y == 0 {
		c.Seed.Y = float64(c.Height) / 2
	}
	if c.Seed.Color == (Color{}) {
		c.Seed.Color = RGB(255, 0, 0)
	}
	if c.Seed.Scale == 0 {
		c.Seed.Scale = 1
	}

	if c.Bloom.Count == 0 {
		c.Bloom.Count = 500
	}
	if c.Bloom.Width == 0 {
		c.Bloom.Width = float64(c.Width)
	}
	if c.Bloom.Height == 0 {
		c.Bloom.Height = float64(c.Height)
	}
	if c.Bloom.Radius == 0 {
		c.Bloom.Radius = 240
	}

	if c.Footer.Width == 0 {
		c.Footer.Width = float64(c.Width)
	}
	if c.Footer.Height == 0 {
		c.Footer.Height = 5
	}
	if c.Footer.Speed == 0 {
		c.Footer.Speed = 2
	}

	if c.Move.Width == 0 && c.Move.Height == 0 {
		c.Move = MoveConfig{X: 240, Width: 610, Height: float64(c.Height), ToX: 500}
	}

	setDuration(&c.Timing.Tick, 10*time.Millisecond)
	setDuration(&c.Timing.LoopTick, 26*time.Millisecond)
	setDuration(&c.Timing.OverlayTick, time.Second)
	setDuration(&c.Timing.OverlayDelay, time.Second)
	setDuration(&c.Timing.OverlayFade, time.Second)
	setDuration(&c.Timing.Flash, 300*time.Millisecond)

	if c.Overlay.Color == (Color{}) {
		c.Overlay.Color = ColorBark
	}
	return c
}

func setDuration(d *time.Duration, def time.Duration) {
	if *d == 0 {
		*d = def
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig. A file that
// sets "branches" replaces the whole default tree.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cfg.RawBranches = nil
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.RawBranches != nil {
		defs, err := ParseBranchDefs(cfg.RawBranches)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg.Branches = defs
	}
	cfg.RawBranches = EncodeBranchDefs(cfg.Branches)
	return cfg, nil
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	cfg.RawBranches = EncodeBranchDefs(cfg.Branches)
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ParseBranchDefs converts the compact array form
//
//	[x1, y1, x2, y2, x3, y3, radius, length?, [children...]?]
//
// into a tree of BranchDef nodes. Length defaults to 100. Values are not
// range-checked.
func ParseBranchDefs(raw []any) ([]BranchDef, error) {
	return parseBranchList(raw, "branches")
}

func parseBranchList(raw []any, path string) ([]BranchDef, error) {
	defs := make([]BranchDef, 0, len(raw))
	for i, item := range raw {
		def, err := parseBranchDef(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseBranchDef(raw any, path string) (BranchDef, error) {
	arr, ok := raw.([]any)
	if !ok {
		return BranchDef{}, fmt.Errorf("parse %s: want array, got %T", path, raw)
	}
	if len(arr) < 7 {
		return BranchDef{}, fmt.Errorf("parse %s: want at least 7 elements, got %d", path, len(arr))
	}

	var nums [8]float64
	n := min(len(arr), 8)
	for i := 0; i < n; i++ {
		v, ok := toFloat(arr[i])
		if !ok {
			return BranchDef{}, fmt.Errorf("parse %s[%d]: want number, got %T", path, i, arr[i])
		}
		nums[i] = v
	}

	def := BranchDef{
		Start:   Vec2{nums[0], nums[1]},
		Control: Vec2{nums[2], nums[3]},
		End:     Vec2{nums[4], nums[5]},
		Radius:  nums[6],
		Length:  defaultBranchLength,
	}
	if n == 8 {
		def.Length = int(nums[7])
	}
	if len(arr) > 8 {
		children, ok := arr[8].([]any)
		if !ok {
			return BranchDef{}, fmt.Errorf("parse %s[8]: want array of children, got %T", path, arr[8])
		}
		kids, err := parseBranchList(children, path+".children")
		if err != nil {
			return BranchDef{}, err
		}
		def.Children = kids
	}
	return def, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// EncodeBranchDefs is the inverse of ParseBranchDefs.
func EncodeBranchDefs(defs []BranchDef) []any {
	if len(defs) == 0 {
		return nil
	}
	out := make([]any, 0, len(defs))
	for _, d := range defs {
		node := []any{
			d.Start.X, d.Start.Y, d.Control.X, d.Control.Y, d.End.X, d.End.Y,
			d.Radius, int64(d.Length),
		}
		if len(d.Children) > 0 {
			node = append(node, EncodeBranchDefs(d.Children))
		}
		out = append(out, node)
	}
	return out
}
