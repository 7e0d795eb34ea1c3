package scorecard

import (
	"maps"
	"strings"
)

// DefaultLogo is the asset used for teams without an entry, including
// all-star and exhibition teams.
const DefaultLogo = "baseball-fairy-161.png"

// LogoTable maps team abbreviations to logo asset paths.
type LogoTable struct {
	Assets  map[string]string
	Default string
}

// DefaultLogos returns the built-in table.
func DefaultLogos() LogoTable {
	assets := map[string]string{
		"NAS": "nl.svg",
		"AAS": "al.svg",
		"FLO": "florida.svg",
		"MON": "expos.svg",
	}
	for name, codes := range map[string][]string{
		"angels":       {"LAA", "CAL"},
		"astros":       {"HOU"},
		"athletics":    {"OAK"},
		"blue-jays":    {"TOR"},
		"braves":       {"ATL"},
		"brewers":      {"MIL", "ML4"},
		"cardinals":    {"STL"},
		"cubs":         {"CHC"},
		"diamondbacks": {"ARI"},
		"dodgers":      {"LAD"},
		"giants":       {"SF"},
		"indians":      {"CLE"},
		"mariners":     {"SEA"},
		"marlins":      {"MIA"},
		"mets":         {"NYM"},
		"nationals":    {"WSH"},
		"orioles":      {"BAL"},
		"padres":       {"SD"},
		"phillies":     {"PHI"},
		"pirates":      {"PIT"},
		"rangers":      {"TEX"},
		"rays":         {"TB"},
		"reds":         {"CIN"},
		"red-sox":      {"BOS"},
		"rockies":      {"COL"},
		"royals":       {"KC"},
		"tigers":       {"DET"},
		"twins":        {"MIN"},
		"white-sox":    {"CWS", "CHW"},
		"yankees":      {"NYY"},
	} {
		for _, code := range codes {
			assets[code] = name + ".gif"
		}
	}
	for code, file := range assets {
		assets[code] = "team_logos/" + file
	}
	return LogoTable{Assets: assets, Default: DefaultLogo}
}

// With returns a copy of t with overrides applied.
func (t LogoTable) With(overrides map[string]string) LogoTable {
	out := LogoTable{Assets: maps.Clone(t.Assets), Default: t.Default}
	if out.Assets == nil {
		out.Assets = make(map[string]string, len(overrides))
	}
	for code, path := range overrides {
		out.Assets[strings.ToUpper(code)] = path
	}
	return out
}

// Lookup returns the asset for abbr, or the default asset.
func (t LogoTable) Lookup(abbr string) string {
	if p, ok := t.Assets[strings.ToUpper(abbr)]; ok {
		return p
	}
	return t.Default
}
