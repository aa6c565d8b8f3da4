package lovetree

const (
	branchRadiusDecay   = 0.97
	defaultBranchLength = 100
)

// BranchDef declares one branch and, recursively, the branches that sprout
// from its end once it has finished growing. Each node owns its children.
type BranchDef struct {
	Start    Vec2 // first control point, where growth begins
	Control  Vec2
	End      Vec2
	Radius   float64
	Length   int // number of growth steps
	Children []BranchDef
}

// BranchState is the lifecycle state of a Branch.
type BranchState uint8

const (
	BranchGrowing   BranchState = iota // 0 <= len <= length
	BranchCompleted                    // len > length; children take over
)

func (s BranchState) String() string {
	switch s {
	case BranchGrowing:
		return "growing"
	case BranchCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Branch advances one disc at a time along a quadratic bezier, shrinking
// as it goes.
type Branch struct {
	def    BranchDef
	radius float64
	len    int
	t      float64
}

// NewBranch instantiates def at step 0. A Length of 1 yields an infinite
// step fraction and non-finite positions; that input is not rejected.
func NewBranch(def BranchDef) *Branch {
	return &Branch{
		def:    def,
		radius: def.Radius,
		t:      1 / float64(def.Length-1),
	}
}

// Def returns the definition the branch was built from.
func (b *Branch) Def() BranchDef { return b.def }

// Radius returns the current disc radius.
func (b *Branch) Radius() float64 { return b.radius }

// Step returns how many discs have been drawn so far.
func (b *Branch) Step() int { return b.len }

// State reports whether the branch is still growing.
func (b *Branch) State() BranchState {
	if b.len > b.def.Length {
		return BranchCompleted
	}
	return BranchGrowing
}

// Position returns the point on the curve for the current step.
func (b *Branch) Position() Vec2 {
	return Bezier(b.def.Start, b.def.Control, b.def.End, float64(b.len)*b.t)
}

// Grow draws the disc for the current step onto s and advances one step.
// It returns the state after the step; a completed branch draws nothing.
func (b *Branch) Grow(s Surface) BranchState {
	if b.State() == BranchCompleted {
		return BranchCompleted
	}
	s.FillCircle(b.Position(), b.radius, Style{
		Color:       ColorBark,
		ShadowBlur:  2,
		ShadowColor: ColorBark,
	})
	b.radius *= branchRadiusDecay
	b.len++
	return b.State()
}
