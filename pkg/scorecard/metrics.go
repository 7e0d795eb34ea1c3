package scorecard

// Metrics is the fixed geometry and typography table of the scorecard.
// Values are in SVG user units.
type Metrics struct {
	CanvasHeight  int // full height of both panels
	PageWidth     int // printable width; pitcher panels split it in two
	DisplayHeight int // height attribute of the root element

	BoxWidth  int // width of one inning column
	BoxHeight int // height of one lineup slot

	MinInnings          int // inning columns always drawn
	ExtraColumns        int // columns beyond MinInnings (box score, title)
	LineupSlots         int // lineup panels per team, padding included
	RegulationLineup    int // batters in a regular lineup
	OverflowShiftColumn int // columns above this shift their row base by one

	BatterInitialY     int
	PitcherPanelHeight int
	TotalsBoxHeight    int
	TitlePanelHeight   int

	BigTitleSize     int
	SmallTitleSize   int
	TitleLengthLimit int // titles at least this long use SmallTitleSize

	LongNameLimit        int // names longer than this downgrade the large tiers
	PitcherTierThreshold int // pitcher counts above this use the dense tier

	Batters  BatterTiers
	Pitchers PitcherTiers
}

// BatterTiers is the enumerated batter typography table.
type BatterTiers struct {
	Large        BatterTier
	LargeReduced BatterTier
	Medium       BatterTier
	Small        BatterTier
}

// PitcherTiers is the enumerated pitcher typography table.
type PitcherTiers struct {
	Large  PitcherTier
	Medium PitcherTier
	Small  PitcherTier
}

// DefaultMetrics returns the production table.
func DefaultMetrics() Metrics {
	return Metrics{
		CanvasHeight:  4913,
		PageWidth:     3192,
		DisplayHeight: 2356,

		BoxWidth:  266,
		BoxHeight: 200,

		MinInnings:          10,
		ExtraColumns:        4,
		LineupSlots:         10,
		RegulationLineup:    9,
		OverflowShiftColumn: 9,

		BatterInitialY:     45,
		PitcherPanelHeight: 256,
		TotalsBoxHeight:    400,
		TitlePanelHeight:   1300,

		BigTitleSize:     75,
		SmallTitleSize:   65,
		TitleLengthLimit: 42,

		LongNameLimit:        18,
		PitcherTierThreshold: 10,

		Batters: BatterTiers{
			Large:        BatterTier{Name: "large", FontSize: 38, Pitch: 48, StatsOffset: 15, Padding: 4},
			LargeReduced: BatterTier{Name: "large-reduced", FontSize: 34, Pitch: 42, StatsOffset: 13, Padding: 5},
			Medium:       BatterTier{Name: "medium", FontSize: 30, Pitch: 32, StatsOffset: 10, Padding: 6},
			Small:        BatterTier{Name: "small", FontSize: 25, Pitch: 25, StatsOffset: 6, Padding: 10},
		},
		Pitchers: PitcherTiers{
			Large:  PitcherTier{Name: "large", FontSize: 30, StatsSize: 25, FirstLineY: 90, Pitch: 40, StatsOffset: 73, ChunkSize: 5},
			Medium: PitcherTier{Name: "medium", FontSize: 26, StatsSize: 23, FirstLineY: 85, Pitch: 34, StatsOffset: 70, ChunkSize: 5},
			Small:  PitcherTier{Name: "small", FontSize: 22, StatsSize: 20, FirstLineY: 78, Pitch: 26, StatsOffset: 67, ChunkSize: 7},
		},
	}
}

// CanvasWidth is the width of the whole grid including the title column.
func (m Metrics) CanvasWidth() int { return m.BoxWidth * (m.MinInnings + m.ExtraColumns) }

// HalfHeight is the y origin of panel B.
func (m Metrics) HalfHeight() int { return m.CanvasHeight / 2 }

// MaxInnings is the number of inning columns the canvas pre-allocates.
func (m Metrics) MaxInnings() int { return m.MinInnings + m.ExtraColumns - 2 }

// RosterHeight is the height of the stacked lineup panels of one team.
func (m Metrics) RosterHeight() int { return m.LineupSlots * m.BoxHeight }

// BoxScoreX is the x origin of the box-score column.
func (m Metrics) BoxScoreX() int { return m.BoxWidth * (m.MinInnings + 2) }

// SideX is the x origin of the rightmost (title, logo, totals) column.
func (m Metrics) SideX() int { return m.CanvasWidth() - m.BoxWidth }
