package scorecard

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/scorecard/pkg/clock"
	"github.com/matzehuels/scorecard/pkg/game"
	"github.com/matzehuels/scorecard/pkg/game/gametest"
)

func TestDateString(t *testing.T) {
	c := NewTitleComposer(DefaultMetrics(), clock.New())

	tests := []struct {
		name   string
		mutate func(g *game.Game)
		want   string
	}{
		{
			name:   "completed game",
			mutate: func(*game.Game) {},
			want:   "Sun Jul 04 2021, 1:15 PM - 4:02 PM CDT",
		},
		{
			name: "suspended game has no end range",
			mutate: func(g *game.Game) {
				g.End = time.Time{}
				g.Suspended = true
			},
			want: "Sun Jul 04 2021, 1:15 PM CDT, Suspended",
		},
		{
			name: "postponed game uses the scheduled time",
			mutate: func(g *game.Game) {
				g.Start, g.End = time.Time{}, time.Time{}
				g.ExpectedStart = time.Date(2021, time.July, 4, 0, 5, 0, 0, time.UTC)
				g.Postponed = true
			},
			want: "Sat Jul 03 2021, 7:05 PM CDT, Postponed",
		},
		{
			name: "suspended wins over postponed",
			mutate: func(g *game.Game) {
				g.Suspended, g.Postponed = true, true
			},
			want: "Sun Jul 04 2021, 1:15 PM - 4:02 PM CDT, Suspended",
		},
		{
			name: "doubleheader",
			mutate: func(g *game.Game) {
				g.Doubleheader, g.GameNumber = true, 2
			},
			want: "Sun Jul 04 2021, 1:15 PM - 4:02 PM CDT, Game 2",
		},
		{
			name: "unknown start time",
			mutate: func(g *game.Game) {
				g.Start = time.Date(2021, time.July, 5, 3, 33, 0, 0, time.UTC)
			},
			want: "Sun Jul 04 2021",
		},
		{
			name: "no timestamps",
			mutate: func(g *game.Game) {
				g.Start, g.ExpectedStart, g.End = time.Time{}, time.Time{}, time.Time{}
				g.Suspended = true
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gametest.Standard()
			tt.mutate(g)
			if got := c.DateString(g); got != tt.want {
				t.Errorf("DateString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetailString(t *testing.T) {
	c := NewTitleComposer(DefaultMetrics(), clock.New())
	tests := []struct {
		name                    string
		attendance, temperature int
		weather                 string
		want                    string
	}{
		{"all parts", 41520, 88, "Partly Cloudy", "Att. 41,520 - Partly Cloudy - 88 F"},
		{"no attendance", 0, 72, "Sunny", "Sunny - 72 F"},
		{"attendance only", 1234567, 0, "", "Att. 1,234,567"},
		{"temperature only", 0, 55, "", "55 F"},
		{"nothing", 0, 0, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &game.Game{Attendance: tt.attendance, Temperature: tt.temperature, Weather: tt.weather}
			if got := c.DetailString(g); got != tt.want {
				t.Errorf("DetailString() = %q, want %q", got, tt.want)
			}
		})
	}
}

type fixedClock clock.Display

func (f fixedClock) Describe(clock.Stamps) clock.Display { return clock.Display(f) }

func TestTitleCompose(t *testing.T) {
	g := gametest.Standard()
	g.Location = "Wrigley Field & Friends"
	c := NewTitleComposer(DefaultMetrics(), fixedClock{Known: true, TimeUnknown: true, Date: "Fri Jan 01 2021"})
	out := Markup(c.Compose(g))

	for _, want := range []string{
		`<svg width="266" height="1300" x="3458" y="0"`,
		`<svg width="266" height="1300" x="3458" y="2456"`,
		">TOP<", ">BOTTOM<",
		`font-size="75" text-anchor="middle" fill="black">Chicago Cubs @ St. Louis Cardinals</text>`,
		">Wrigley Field &amp; Friends<",
		">Fri Jan 01 2021<",
		`transform="rotate(-90,80,700)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("title missing %q", want)
		}
	}

	g.Away.Name = "Los Angeles Angels of Anaheim"
	out = Markup(c.Compose(g))
	if !strings.Contains(out, `font-size="65"`) {
		t.Error("long titles should use the small title size")
	}
}

func TestTitleSizeCountsCharacters(t *testing.T) {
	c := NewTitleComposer(DefaultMetrics(), fixedClock{})
	tests := []struct {
		away, home string
		want       string
	}{
		// 41 characters, 42 bytes.
		{"Montréal Expos", "Pittsburgh Pirates Clubs", `font-size="75"`},
		// 42 characters.
		{"Montréal Expos", "Pittsburgh Pirates Clubsx", `font-size="65"`},
	}
	for _, tt := range tests {
		g := gametest.Standard()
		g.Away.Name, g.Home.Name = tt.away, tt.home
		out := Markup(c.Compose(g))
		if !strings.Contains(out, tt.want+` text-anchor="middle" fill="black">`+g.Title()) {
			t.Errorf("%q: want title with %s", g.Title(), tt.want)
		}
	}
}
