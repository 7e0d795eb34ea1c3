package scorecard

import "testing"

func TestCellOrigin(t *testing.T) {
	g := NewGrid(DefaultMetrics())
	tests := []struct {
		name   string
		inning int
		slot   int
		panel  Panel
		want   Point
	}{
		{"first cell panel A", 1, 0, PanelA, Point{532, 100}},
		{"first cell panel B", 1, 0, PanelB, Point{532, 2556}},
		{"last row first inning", 1, 9, PanelA, Point{532, 1900}},
		{"second inning wraps", 2, 10, PanelA, Point{798, 100}},
		{"eighth inning unshifted", 8, 70, PanelA, Point{2394, 100}},
		{"ninth inning shifted", 9, 80, PanelA, Point{2660, 1900}},
		{"ninth inning second slot", 9, 81, PanelB, Point{2660, 2556}},
		{"tenth inning shifted", 10, 95, PanelA, Point{2926, 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CellOrigin(tt.inning, tt.slot, tt.panel); got != tt.want {
				t.Errorf("CellOrigin(%d, %d, %v) = %+v, want %+v", tt.inning, tt.slot, tt.panel, got, tt.want)
			}
		})
	}
}

func TestCellOriginPure(t *testing.T) {
	m := DefaultMetrics()
	g := NewGrid(m)
	for inning := m.MaxInnings(); inning >= 1; inning-- {
		for b := m.LineupSlots - 1; b >= 0; b-- {
			for _, p := range []Panel{PanelB, PanelA} {
				slot := g.Slot(inning, b)
				first := g.CellOrigin(inning, slot, p)
				if again := NewGrid(m).CellOrigin(inning, slot, p); again != first {
					t.Fatalf("CellOrigin(%d, %d, %v) not deterministic: %+v vs %+v", inning, slot, p, first, again)
				}
			}
		}
	}
}

func TestCellsNeverCollideWithinColumn(t *testing.T) {
	m := DefaultMetrics()
	g := NewGrid(m)
	for inning := 1; inning <= m.MaxInnings(); inning++ {
		for _, p := range []Panel{PanelA, PanelB} {
			seen := make(map[Point]int)
			for b := 0; b < m.LineupSlots; b++ {
				slot := g.Slot(inning, b)
				pt := g.CellOrigin(inning, slot, p)
				if prev, ok := seen[pt]; ok {
					t.Errorf("inning %d panel %v: slots %d and %d share cell %+v", inning, p, prev, slot, pt)
				}
				seen[pt] = slot
				if pt.X != g.Column(inning)*m.BoxWidth {
					t.Errorf("slot %d left its column: x = %d", slot, pt.X)
				}
			}
		}
	}
}

func TestInningColumns(t *testing.T) {
	g := NewGrid(DefaultMetrics())
	tests := []struct{ innings, want int }{
		{0, 10},
		{9, 10},
		{10, 10},
		{11, 11},
		{12, 12},
		{18, 12},
	}
	for _, tt := range tests {
		if got := g.InningColumns(tt.innings); got != tt.want {
			t.Errorf("InningColumns(%d) = %d, want %d", tt.innings, got, tt.want)
		}
	}
}

func TestCells(t *testing.T) {
	g := NewGrid(DefaultMetrics())
	pts := g.Cells(9, PanelB)
	if len(pts) != 100 {
		t.Fatalf("Cells(9) = %d cells, want 100", len(pts))
	}
	seen := make(map[Point]bool)
	for _, p := range pts {
		if seen[p] {
			t.Errorf("duplicate cell %+v", p)
		}
		seen[p] = true
		if p.Y < 2456 {
			t.Errorf("panel B cell %+v above the panel origin", p)
		}
	}
}

func TestPanelFor(t *testing.T) {
	if PanelFor(Top) != PanelA || PanelFor(Bottom) != PanelB {
		t.Error("top half should map to panel A and bottom half to panel B")
	}
	if Top.String() != "TOP" || Bottom.String() != "BOTTOM" {
		t.Errorf("half labels = %s/%s", Top, Bottom)
	}
}
