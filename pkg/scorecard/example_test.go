package scorecard_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/scorecard/pkg/game/gametest"
	"github.com/matzehuels/scorecard/pkg/scorecard"
)

func ExampleRenderer_Render() {
	svg, err := scorecard.New().Render(gametest.Standard())
	if err != nil {
		fmt.Println(err)
		return
	}

	doc := string(svg)
	fmt.Println("Starts with preamble:", strings.HasPrefix(doc, scorecard.Preamble))
	fmt.Println("Ends with terminator:", strings.HasSuffix(doc, scorecard.Terminator))
	fmt.Println("Away logo:", strings.Contains(doc, "team_logos/cubs.gif"))
	// Output:
	// Starts with preamble: true
	// Ends with terminator: true
	// Away logo: true
}

func ExampleGrid_CellOrigin() {
	g := scorecard.NewGrid(scorecard.DefaultMetrics())
	fmt.Println(g.CellOrigin(1, 0, scorecard.PanelA))
	fmt.Println(g.CellOrigin(1, 0, scorecard.PanelFor(scorecard.Bottom)))
	// Output:
	// {532 100}
	// {532 2556}
}

func ExampleMetrics_ResolveBatterTier() {
	m := scorecard.DefaultMetrics()
	fmt.Println(m.ResolveBatterTier(1, 12).Name)
	fmt.Println(m.ResolveBatterTier(2, 24).Name)
	fmt.Println(m.ResolveBatterTier(9, 12).Name)
	// Output:
	// large
	// large-reduced
	// small
}
