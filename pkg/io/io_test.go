package io_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/scorecard/pkg/game/gametest"
	scio "github.com/matzehuels/scorecard/pkg/io"
)

func TestReadJSON(t *testing.T) {
	input := `{
		"away": {"name": "Chicago Cubs", "abbreviation": "CHC",
			"lineup": [[{"id": "1", "name": "Anthony Rizzo", "bat_side": "L", "obp": 0.368, "slg": 0.489, "start_inning": 1, "position": "1B"},
			            {"id": "2", "name": "Pinch Hitter", "start_inning": 7, "position": "PH"}]],
			"pitchers": [{"id": "9", "name": "Kyle Hendricks", "pitch_hand": "R", "era": 3.1, "start_inning": 1}]},
		"home": {"name": "St. Louis Cardinals", "abbreviation": "STL", "lineup": [[{"name": "Paul Goldschmidt"}]]},
		"innings": [{"top": {"runs": 2, "hits": 3}}, {"bottom": {"errors": 1}}],
		"start": "2021-07-04T18:15:00Z",
		"attendance": 41520
	}`

	g, err := scio.ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if g.Away.Name != "Chicago Cubs" || g.Home.Abbreviation != "STL" {
		t.Errorf("teams = %q / %q", g.Away.Name, g.Home.Abbreviation)
	}
	if got := len(g.Away.Lineup[0]); got != 2 {
		t.Fatalf("slot 1 appearances = %d, want 2", got)
	}
	rizzo := g.Away.Lineup[0][0]
	if rizzo.Player.BatSide != "L" || rizzo.Position != "1B" || rizzo.Player.OBP == nil {
		t.Errorf("appearance = %+v", rizzo)
	}
	if g.Away.Pitchers[0].Player.PitchingStats() != "ERA: 3.10" {
		t.Errorf("pitcher stats = %q", g.Away.Pitchers[0].Player.PitchingStats())
	}
	if g.Innings[0].Top.Runs != 2 || g.Innings[1].Bottom.Errors != 1 {
		t.Errorf("innings = %+v", g.Innings)
	}
	if g.Start.IsZero() || !g.End.IsZero() {
		t.Errorf("start = %v, end = %v", g.Start, g.End)
	}
	if g.Attendance != 41520 {
		t.Errorf("attendance = %d", g.Attendance)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"away": `},
		{"bad start", `{"start": "July 4th"}`},
		{"bad end", `{"end": "2021-07-04"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := scio.ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	want := gametest.Standard()

	var buf bytes.Buffer
	if err := scio.WriteJSON(&buf, want); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := scio.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.Title() != want.Title() {
		t.Errorf("title = %q, want %q", got.Title(), want.Title())
	}
	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Errorf("times = %v..%v, want %v..%v", got.Start, got.End, want.Start, want.End)
	}
	if len(got.Innings) != len(want.Innings) || got.Innings[0].Top != want.Innings[0].Top {
		t.Errorf("innings = %+v", got.Innings)
	}
	if got.Home.Lineup[8][0].Player.BattingStats() != want.Home.Lineup[8][0].Player.BattingStats() {
		t.Error("batting stats lost in round trip")
	}
	if err := got.Validate(); err != nil {
		t.Errorf("round-tripped game invalid: %v", err)
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	if err := scio.ExportJSON(path, gametest.Standard()); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	g, err := scio.ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if g.Location != "Busch Stadium, St. Louis, MO" {
		t.Errorf("location = %q", g.Location)
	}

	if _, err := scio.ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON of missing file should fail")
	}
}

func TestWriteJSONOmitsZeroTimes(t *testing.T) {
	g := gametest.Standard()
	g.End = time.Time{}
	g.Suspended = true

	var buf bytes.Buffer
	if err := scio.WriteJSON(&buf, g); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, `"end"`) {
		t.Errorf("zero end time should be omitted:\n%s", out)
	}
	if !strings.Contains(out, `"suspended": true`) {
		t.Errorf("missing suspended flag:\n%s", out)
	}
}
