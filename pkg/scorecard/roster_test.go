package scorecard

import (
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/scorecard/pkg/game"
	"github.com/matzehuels/scorecard/pkg/game/gametest"
)

var (
	namePanelRe     = regexp.MustCompile(`<svg x="0" y="\d+" width="532" height="200"`)
	boxScorePanelRe = regexp.MustCompile(`<svg x="3192" y="\d+" width="532" height="200"`)
)

func TestRosterPadsToTenPanels(t *testing.T) {
	c := NewRosterComposer(DefaultMetrics(), false)
	for _, batters := range []int{0, 1, 9, 10, 12} {
		team := gametest.Team("Cubs", "CHC", batters, 1)
		out := Markup(c.Compose(team, PanelA))
		if got := len(namePanelRe.FindAllString(out, -1)); got != 10 {
			t.Errorf("%d batters: %d name panels, want 10", batters, got)
		}
		if got := len(boxScorePanelRe.FindAllString(out, -1)); got != 10 {
			t.Errorf("%d batters: %d box-score panels, want 10", batters, got)
		}
		if got, want := strings.Count(out, `fill="blue"`), min(batters, 10); got != want {
			t.Errorf("%d batters: %d printed names, want %d", batters, got, want)
		}
	}

	out := Markup(c.Compose(nil, PanelB))
	if got := len(namePanelRe.FindAllString(out, -1)); got != 10 {
		t.Errorf("nil team: %d name panels, want 10", got)
	}
}

func TestRosterCoalescesRepeatedPlayer(t *testing.T) {
	starter := game.Player{ID: "1", Name: "Ian Happ", BatSide: "S"}
	sub := game.Player{ID: "2", Name: "Jake Marisnick", BatSide: "R"}
	team := &game.Team{
		Name:         "Cubs",
		Abbreviation: "CHC",
		Lineup: [][]game.Appearance{{
			{Player: starter, StartInning: 1, Position: "CF"},
			{Player: starter, StartInning: 4, Position: "LF"},
			{Player: sub, StartInning: 8, Position: "CF"},
		}},
	}

	out := Markup(NewRosterComposer(DefaultMetrics(), false).Compose(team, PanelA))

	if got := strings.Count(out, `text-anchor="end"`); got != 3 {
		t.Errorf("reserved rows = %d, want 3", got)
	}
	if got := strings.Count(out, `fill="blue"`); got != 2 {
		t.Errorf("printed names = %d, want 2", got)
	}
	if got := strings.Count(out, ">Ian Happ - S<"); got != 1 {
		t.Errorf("repeated name printed %d times, want 1", got)
	}
	// three rows at the large pitch keep their spacing
	for _, y := range []string{`y="45"`, `y="93"`, `y="141"`} {
		if !strings.Contains(out, y) {
			t.Errorf("missing row at %s", y)
		}
	}
}

func TestRosterRowContent(t *testing.T) {
	team := gametest.Team("Cubs", "CHC", 9, 1)
	out := Markup(NewRosterComposer(DefaultMetrics(), false).Compose(team, PanelA))

	for _, want := range []string{
		`<a target="_parent" xlink:href="http://mlb.com/player/CHC-b1">`,
		`>CHC Batter 1 - R<title>OBP: 0.300, SLG: 0.400</title></text></a>`,
		`>1   /  CF</text>`,
		`<svg x="0" y="100" width="532"`,
		`<svg x="0" y="1900" width="532"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	inline := Markup(NewRosterComposer(DefaultMetrics(), true).Compose(team, PanelB))
	if strings.Contains(inline, "<title>") {
		t.Error("inline stats should replace the tooltip")
	}
	if !strings.Contains(inline, `>OBP: 0.300, SLG: 0.400</text>`) {
		t.Error("inline stats line missing")
	}
	if !strings.Contains(inline, `<svg x="0" y="2556" width="532"`) {
		t.Error("panel B roster should start below the panel origin")
	}
}

func TestRosterEscapesNames(t *testing.T) {
	team := &game.Team{Lineup: [][]game.Appearance{{{Player: game.Player{Name: "O'Neil & <Sons>"}}}}}
	out := Markup(NewRosterComposer(DefaultMetrics(), false).Compose(team, PanelA))
	if strings.Contains(out, "<Sons>") || !strings.Contains(out, "&amp; &lt;Sons&gt;") {
		t.Errorf("name not escaped: %s", out)
	}
	if strings.Contains(out, "xlink:href") {
		t.Error("players without an ID should not be linked")
	}
}

func TestAppearanceLabel(t *testing.T) {
	tests := []struct {
		a    game.Appearance
		want string
	}{
		{game.Appearance{StartInning: 1, Position: "CF"}, "1   /  CF"},
		{game.Appearance{StartInning: 11, Position: "PH"}, "11  /  PH"},
		{game.Appearance{StartInning: 7, Position: "1B-P"}, "7   / 1B-P"},
	}
	for _, tt := range tests {
		if got := AppearanceLabel(tt.a); got != tt.want {
			t.Errorf("AppearanceLabel(%+v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}
