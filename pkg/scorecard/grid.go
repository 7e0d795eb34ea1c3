package scorecard

// Panel is one of the two stacked page halves of the canvas.
type Panel int

const (
	PanelA Panel = iota // top of the page, y origin 0
	PanelB              // bottom of the page, y origin CanvasHeight/2
)

func (p Panel) String() string {
	if p == PanelB {
		return "B"
	}
	return "A"
}

// Half is a half inning.
type Half int

const (
	Top Half = iota
	Bottom
)

func (h Half) String() string {
	if h == Bottom {
		return "BOTTOM"
	}
	return "TOP"
}

// PanelFor returns the panel scored during half h: the away team bats in
// the top half and is kept in panel A.
func PanelFor(h Half) Panel {
	if h == Bottom {
		return PanelB
	}
	return PanelA
}

// Point is a canvas coordinate.
type Point struct {
	X, Y int
}

// Grid computes plate-appearance cell positions. It is a pure function of
// its Metrics.
type Grid struct {
	m Metrics
}

// NewGrid returns the grid for m.
func NewGrid(m Metrics) Grid {
	return Grid{m: m}
}

// PanelY returns the y origin of p.
func (g Grid) PanelY(p Panel) int {
	if p == PanelB {
		return g.m.HalfHeight()
	}
	return 0
}

// Column returns the column index of an inning (1-based). Columns 0 and 1
// hold the batter names.
func (g Grid) Column(inning int) int {
	return inning + 1
}

// InningColumns returns the number of inning columns drawn for a game with
// the given number of innings: at least MinInnings, at most MaxInnings.
func (g Grid) InningColumns(innings int) int {
	return min(max(g.m.MinInnings, innings), g.m.MaxInnings())
}

// Row returns the row of a plate-appearance slot within its column. Slots
// are numbered continuously across columns. Columns past
// OverflowShiftColumn shift the modular base back by one.
func (g Grid) Row(inning, slot int) int {
	if g.Column(inning) > g.m.OverflowShiftColumn {
		slot--
	}
	return mod(slot, g.m.LineupSlots)
}

// CellOrigin returns the top-left corner of the plate-appearance cell for
// slot in the given inning and panel. Innings beyond the drawn columns
// still get coordinates; they fall outside the printed grid.
func (g Grid) CellOrigin(inning, slot int, panel Panel) Point {
	return Point{
		X: g.Column(inning) * g.m.BoxWidth,
		Y: g.PanelY(panel) + g.Row(inning, slot)*g.m.BoxHeight + g.m.BoxHeight/2,
	}
}

// Slot returns the continuous slot index of the b-th cell (0-based) of an
// inning column.
func (g Grid) Slot(inning, b int) int {
	return (inning-1)*g.m.LineupSlots + b
}

// Cells returns the origins of every plate-appearance cell drawn in panel
// for a game of the given length, column by column.
func (g Grid) Cells(innings int, panel Panel) []Point {
	cols := g.InningColumns(innings)
	out := make([]Point, 0, cols*g.m.LineupSlots)
	for inning := 1; inning <= cols; inning++ {
		for b := 0; b < g.m.LineupSlots; b++ {
			out = append(out, g.CellOrigin(inning, g.Slot(inning, b), panel))
		}
	}
	return out
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return ((a % n) + n) % n
}
